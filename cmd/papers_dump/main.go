package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/donavanyieh/Daily-Attention-UI/internal/cache"
	"github.com/donavanyieh/Daily-Attention-UI/internal/config"
	"github.com/donavanyieh/Daily-Attention-UI/internal/feed"
	"github.com/donavanyieh/Daily-Attention-UI/internal/logging"
	sqlstore "github.com/donavanyieh/Daily-Attention-UI/internal/storage/sqlite"
)

func main() {
	dbPath := flag.String("db", "", "papers database file (default $PAPERS_DB_PATH, $SQLITE_PATH or papers.db)")
	limit := flag.Int("limit", 0, "maximum papers to print (0 = all)")
	flag.Parse()

	cfg := config.Load(*dbPath)
	logging.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := os.Stat(cfg.DBPath); err != nil {
		logging.Fatalf("[papers-dump] %v", err)
	}
	store, err := sqlstore.Open(cfg.DBPath)
	if err != nil {
		logging.Fatalf("[papers-dump] open sqlite: %v", err)
	}
	defer store.Close()

	var feedCache cache.PaperCache
	if cfg.Redis.Addr != "" {
		c, err := cache.NewRedisPaperCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL, cfg.Redis.Prefix)
		if err != nil {
			logging.Errorf("[papers-dump] feed cache disabled: %v", err)
		} else {
			feedCache = c
			defer c.Close()
		}
	}

	list, src, err := feed.Load(ctx, feedCache, store, *limit)
	if err != nil {
		logging.Fatalf("[papers-dump] list papers: %v", err)
	}
	logging.Debugf("[papers-dump] %d papers from %s", len(list), src)

	b, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		logging.Fatalf("[papers-dump] encode: %v", err)
	}
	fmt.Println(string(b))
}

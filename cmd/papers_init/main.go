package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/donavanyieh/Daily-Attention-UI/internal/config"
	"github.com/donavanyieh/Daily-Attention-UI/internal/logging"
	"github.com/donavanyieh/Daily-Attention-UI/internal/notify"
	"github.com/donavanyieh/Daily-Attention-UI/internal/papers"
	"github.com/donavanyieh/Daily-Attention-UI/internal/seed"
)

func main() {
	dbPath := flag.String("db", "", "papers database file (default $PAPERS_DB_PATH, $SQLITE_PATH or papers.db)")
	flag.Parse()

	cfg := config.Load(*dbPath)
	logging.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	list := papers.Mock()
	res, err := seed.Init(ctx, cfg.DBPath, list)
	if err != nil {
		logging.Fatalf("[papers-init] %v", err)
	}
	res.Report(os.Stdout)

	n := notify.New(ctx, cfg, "papers-init")
	defer n.Close()
	n.Seeded(ctx, res, list)
}

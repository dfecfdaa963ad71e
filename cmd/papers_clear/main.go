package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/donavanyieh/Daily-Attention-UI/internal/config"
	"github.com/donavanyieh/Daily-Attention-UI/internal/logging"
	"github.com/donavanyieh/Daily-Attention-UI/internal/notify"
	"github.com/donavanyieh/Daily-Attention-UI/internal/seed"
)

func main() {
	dbPath := flag.String("db", "", "papers database file (default $PAPERS_DB_PATH, $SQLITE_PATH or papers.db)")
	flag.Parse()

	cfg := config.Load(*dbPath)
	logging.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := seed.Clear(ctx, cfg.DBPath)
	if err != nil {
		logging.Fatalf("[papers-clear] %v", err)
	}
	res.Report(os.Stdout)
	logging.Debugf("[papers-clear] outcome=%s before=%d after=%d", res.Outcome, res.Before, res.After)

	if res.Outcome != seed.Cleared {
		return
	}
	n := notify.New(ctx, cfg, "papers-clear")
	defer n.Close()
	n.Cleared(ctx, res)
}

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/donavanyieh/Daily-Attention-UI/internal/chat"
	"github.com/donavanyieh/Daily-Attention-UI/internal/config"
	"github.com/donavanyieh/Daily-Attention-UI/internal/llm"
	"github.com/donavanyieh/Daily-Attention-UI/internal/logging"
	sqlstore "github.com/donavanyieh/Daily-Attention-UI/internal/storage/sqlite"
)

func main() {
	dbPath := flag.String("db", "", "papers database file (default $PAPERS_DB_PATH, $SQLITE_PATH or papers.db)")
	id := flag.String("id", "", "paper id")
	question := flag.String("q", "", "question to ask about the paper")
	flag.Parse()

	if *id == "" || *question == "" {
		logging.Fatalf("-id and -q are required")
	}

	cfg := config.Load(*dbPath)
	logging.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	path := cfg.DBPath
	if _, err := os.Stat(path); err != nil {
		logging.Fatalf("[paper-chat] %v", err)
	}
	store, err := sqlstore.Open(path)
	if err != nil {
		logging.Fatalf("[paper-chat] open sqlite: %v", err)
	}
	defer store.Close()

	paper, err := store.GetPaper(ctx, *id)
	if errors.Is(err, sql.ErrNoRows) {
		logging.Fatalf("[paper-chat] paper %s not found in %s", *id, store.Path())
	}
	if err != nil {
		logging.Fatalf("[paper-chat] load paper: %v", err)
	}

	client, err := llm.New(llm.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	})
	if err != nil {
		logging.Fatalf("[paper-chat] %v", err)
	}

	messages, err := chat.BuildMessages(paper, []llm.Message{{Role: llm.RoleUser, Content: *question}})
	if err != nil {
		logging.Fatalf("[paper-chat] %v", err)
	}
	logging.Debugf("[paper-chat] asking %s about %s", client.Model(), paper.ID)
	answer, err := client.Chat(ctx, messages)
	if err != nil {
		logging.Fatalf("[paper-chat] Failed to generate response: %v", err)
	}
	fmt.Println(answer)
}

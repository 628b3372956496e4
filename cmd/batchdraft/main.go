package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"outreach-engine/internal/batch"
	"outreach-engine/internal/config"
	"outreach-engine/internal/gen"
	"outreach-engine/internal/gmail"
	"outreach-engine/internal/scrape"
	"outreach-engine/internal/secrets"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	csvPath := flag.String("csv_path", "", "path to jobs batch CSV (output of buildlist)")
	resumePath := flag.String("resume_path", "docs/resume.pdf", "path to the resume PDF attached to each draft")
	cfgPath := flag.String("config", "config/config.yml", "path to config file")
	flag.Parse()

	if *csvPath == "" {
		log.Println("usage: batchdraft --csv_path <path> [--resume_path <path>] [--config <path>]")
		os.Exit(1)
	}
	if _, err := os.Stat(*csvPath); err != nil {
		log.Printf("batch CSV not found: %s", *csvPath)
		os.Exit(1)
	}
	if _, err := os.Stat(*resumePath); err != nil {
		log.Printf("resume PDF not found at: %s", *resumePath)
		os.Exit(1)
	}

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", *cfgPath, err)
	}
	cfg, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !res.OK() {
		for _, e := range res.Errors {
			log.Printf("[config] error: %s", e)
		}
		os.Exit(1)
	}

	llmKey, err := secrets.LLMAPIKey()
	if err != nil {
		log.Fatalf("LLM API key: %v", err)
	}

	ctx := context.Background()

	saver, err := newDraftSaver(ctx, cfg)
	if err != nil {
		log.Fatalf("draft transport: %v", err)
	}

	rows, err := batch.ReadBatch(*csvPath)
	if err != nil {
		log.Fatalf("read batch CSV: %v", err)
	}
	if len(rows) == 0 {
		log.Printf("no rows in CSV: %s", *csvPath)
		return
	}
	log.Printf("processing %d rows from %s", len(rows), *csvPath)

	generator := gen.NewGenerator(cfg, llmKey)
	fetcher := scrape.NewJDFetcher(cfg)

	created := batch.ApplyBatch(ctx, cfg, rows, generator, saver, fetcher.Fetch, *resumePath)
	log.Printf("created %d drafts", created)
}

func newDraftSaver(ctx context.Context, cfg config.Config) (batch.DraftSaver, error) {
	if cfg.Mail.Transport == "imap" {
		pw, err := secrets.IMAPAppPassword(cfg.Mail.Username)
		if err != nil {
			return nil, err
		}
		addr := cfg.Mail.IMAPHost
		if cfg.Mail.IMAPPort != 0 {
			addr = fmt.Sprintf("%s:%d", addr, cfg.Mail.IMAPPort)
		}
		return &gmail.IMAPDraftSaver{
			Addr:     addr,
			Username: cfg.Mail.Username,
			Password: pw,
			Mailbox:  cfg.Mail.DraftsMailbox,
		}, nil
	}
	return gmail.NewAPIDraftSaver(ctx, cfg.Mail.CredentialsPath, cfg.Mail.TokenPath)
}

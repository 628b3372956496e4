package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"outreach-engine/internal/config"
	"outreach-engine/internal/gen"
	"outreach-engine/internal/secrets"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	samplesDir := flag.String("samples_dir", "", "directory of .txt sample emails (defaults to config)")
	outPath := flag.String("out", "", "where to write the style profile JSON (defaults to config)")
	cfgPath := flag.String("config", "config/config.yml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", *cfgPath, err)
	}

	dir := *samplesDir
	if dir == "" {
		dir = cfg.Profile.StyleSamplesDir
	}
	out := *outPath
	if out == "" {
		out = cfg.Profile.StyleProfileFile
	}
	if _, err := os.Stat(dir); err != nil {
		log.Printf("samples directory not found: %s", dir)
		os.Exit(1)
	}

	llmKey, err := secrets.LLMAPIKey()
	if err != nil {
		log.Fatalf("LLM API key: %v", err)
	}

	generator := gen.NewGenerator(cfg, llmKey)
	if err := generator.BuildStyleProfile(context.Background(), dir, out); err != nil {
		log.Fatalf("build style profile: %v", err)
	}
	log.Printf("style profile saved to %s", out)
}

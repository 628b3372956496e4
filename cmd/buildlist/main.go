package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"outreach-engine/internal/batch"
	"outreach-engine/internal/config"
	"outreach-engine/internal/enrich"
	"outreach-engine/internal/secrets"
	"outreach-engine/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	rawCSV := flag.String("raw_csv", "", "path to raw jobs CSV")
	outputCSV := flag.String("output_csv", "", "path to output jobs batch CSV")
	cfgPath := flag.String("config", "config/config.yml", "path to config file")
	cacheDB := flag.String("cache_db", "", "optional sqlite file caching contact lookups per domain")
	flag.Parse()

	if *rawCSV == "" || *outputCSV == "" {
		log.Println("usage: buildlist --raw_csv <path> --output_csv <path> [--config <path>] [--cache_db <path>]")
		os.Exit(1)
	}
	if _, err := os.Stat(*rawCSV); err != nil {
		log.Printf("raw jobs CSV not found: %s", *rawCSV)
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

	var cache *store.DB
	if *cacheDB != "" {
		cache, err = store.Open(*cacheDB)
		if err != nil {
			log.Fatalf("open cache db %s: %v", *cacheDB, err)
		}
		defer cache.Close()
	}

	raws, err := batch.ReadRawJobs(*rawCSV)
	if err != nil {
		log.Fatalf("read raw jobs: %v", err)
	}
	if len(raws) == 0 {
		log.Printf("no rows in raw jobs CSV: %s", *rawCSV)
	}
	log.Printf("loaded %d raw jobs from %s", len(raws), *rawCSV)

	w, err := batch.NewBatchWriter(*outputCSV)
	if err != nil {
		log.Fatalf("open output: %v", err)
	}

	finder := enrich.New(cfg, secrets.ProviderAPIKey(), cache)

	written, err := batch.BuildJobList(context.Background(), cfg, finder, raws, w)
	if cerr := w.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatalf("build job list: %v", err)
	}

	log.Printf("wrote %d contact rows to %s", written, *outputCSV)
}

package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"outreach-engine/internal/config"
	"outreach-engine/internal/sheets"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	spreadsheetID := flag.String("spreadsheet_id", "", "Google Sheets spreadsheet id")
	readRange := flag.String("range", "Sheet1", "A1-notation range (or sheet name) to export")
	outputCSV := flag.String("output_csv", "", "path to write the raw jobs CSV")
	cfgPath := flag.String("config", "config/config.yml", "path to config file")
	flag.Parse()

	if *spreadsheetID == "" || *outputCSV == "" {
		log.Println("usage: sheetexport --spreadsheet_id <id> --output_csv <path> [--range <a1>] [--config <path>]")
		os.Exit(1)
	}

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", *cfgPath, err)
	}

	ctx := context.Background()
	srv, err := sheets.NewService(ctx, cfg.Sheets.CredentialsPath, cfg.Sheets.TokenPath)
	if err != nil {
		log.Fatalf("sheets client: %v", err)
	}

	rows, err := sheets.ExportToCSV(ctx, srv, *spreadsheetID, *readRange, *outputCSV)
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}
	log.Printf("exported %d rows to %s", rows, *outputCSV)
}

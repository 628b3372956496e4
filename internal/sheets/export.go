package sheets

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// NewService builds a read-only Sheets service using the same
// credentials.json / token file flow as the Gmail client.
func NewService(ctx context.Context, credentialsPath, tokenPath string) (*sheets.Service, error) {
	b, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	cfg, err := google.ConfigFromJSON(b, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}

	client, err := oauthClient(ctx, cfg, tokenPath)
	if err != nil {
		return nil, err
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	return srv, nil
}

// ExportToCSV reads a sheet range and writes it verbatim as CSV. Short rows
// are padded to the header width so the output is rectangular.
func ExportToCSV(ctx context.Context, srv *sheets.Service, spreadsheetID, readRange, outPath string) (rows int, err error) {
	resp, err := srv.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("sheets values.get: %w", err)
	}
	if len(resp.Values) == 0 {
		return 0, fmt.Errorf("sheet range %q is empty", readRange)
	}

	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, err
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	width := len(resp.Values[0])

	for _, row := range resp.Values {
		record := make([]string, width)
		for i := 0; i < width && i < len(row); i++ {
			record[i] = fmt.Sprintf("%v", row[i])
		}
		if err := w.Write(record); err != nil {
			return rows, err
		}
		rows++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return rows, err
	}
	// header doesn't count as a data row
	return rows - 1, nil
}

func oauthClient(ctx context.Context, cfg *oauth2.Config, tokenPath string) (*http.Client, error) {
	tok := &oauth2.Token{}
	f, err := os.Open(tokenPath)
	if err == nil {
		err = json.NewDecoder(f).Decode(tok)
		_ = f.Close()
	}
	if err != nil {
		tok, err = tokenFromWeb(ctx, cfg)
		if err != nil {
			return nil, err
		}
		saveToken(tokenPath, tok)
	}
	return cfg.Client(ctx, tok), nil
}

func tokenFromWeb(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	authURL := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the authorization code:\n%v\n", authURL)

	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		return nil, fmt.Errorf("read authorization code: %w", err)
	}

	tok, err := cfg.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return tok, nil
}

func saveToken(path string, tok *oauth2.Token) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	_ = json.NewEncoder(f).Encode(tok)
}

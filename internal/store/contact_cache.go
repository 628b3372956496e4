package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"outreach-engine/internal/domain"
)

// GetContacts returns cached contacts for a domain, or ok=false on a miss.
// An empty cached list is a valid hit: it remembers that a lookup found
// nothing useful, so the batch doesn't hammer the provider for the same
// dead domain.
func GetContacts(ctx context.Context, db *DB, dom string) (contacts []domain.Contact, ok bool, err error) {
	dom = normalizeDomainKey(dom)
	if dom == "" {
		return nil, false, nil
	}

	var payload string
	err = db.Pool.QueryRowContext(ctx,
		`SELECT contacts FROM contact_cache WHERE domain = ? LIMIT 1;`,
		dom,
	).Scan(&payload)

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if err := json.Unmarshal([]byte(payload), &contacts); err != nil {
		return nil, false, err
	}
	return contacts, true, nil
}

func PutContacts(ctx context.Context, db *DB, dom string, contacts []domain.Contact) error {
	dom = normalizeDomainKey(dom)
	if dom == "" {
		return nil
	}

	if contacts == nil {
		contacts = []domain.Contact{}
	}
	payload, err := json.Marshal(contacts)
	if err != nil {
		return err
	}

	_, err = db.Pool.ExecContext(ctx, `
INSERT INTO contact_cache(domain, contacts, fetched_at)
VALUES(?,?,?)
ON CONFLICT(domain) DO UPDATE SET
  contacts = excluded.contacts,
  fetched_at = excluded.fetched_at;
`, dom, string(payload), time.Now().UTC().Format(time.RFC3339))

	return err
}

func normalizeDomainKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

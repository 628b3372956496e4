package store

import (
	"context"
	"path/filepath"
	"testing"

	"outreach-engine/internal/domain"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestContactCacheRoundTrip(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	want := []domain.Contact{
		{Name: "Maria Lopez", Email: "maria@acme.com", Position: "Head of Data Science", Score: 3, Source: domain.SourceProvider},
	}
	if err := PutContacts(ctx, db, "Acme.Com ", want); err != nil {
		t.Fatal(err)
	}

	got, ok, err := GetContacts(ctx, db, "acme.com")
	if err != nil || !ok {
		t.Fatalf("expected a hit, got ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestContactCacheMiss(t *testing.T) {
	db := testDB(t)

	if _, ok, err := GetContacts(context.Background(), db, "nothing.io"); ok || err != nil {
		t.Errorf("expected a clean miss, got ok=%v err=%v", ok, err)
	}
}

func TestContactCacheEmptyListIsAHit(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := PutContacts(ctx, db, "dead.io", nil); err != nil {
		t.Fatal(err)
	}
	got, ok, err := GetContacts(ctx, db, "dead.io")
	if err != nil || !ok {
		t.Fatalf("an empty cached list is still a hit, got ok=%v err=%v", ok, err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %+v", got)
	}
}

func TestContactCacheOverwrite(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := PutContacts(ctx, db, "acme.com", []domain.Contact{{Email: "old@acme.com"}}); err != nil {
		t.Fatal(err)
	}
	if err := PutContacts(ctx, db, "acme.com", []domain.Contact{{Email: "new@acme.com"}}); err != nil {
		t.Fatal(err)
	}

	got, ok, err := GetContacts(ctx, db, "acme.com")
	if err != nil || !ok {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Email != "new@acme.com" {
		t.Errorf("second put should replace the first, got %+v", got)
	}
}

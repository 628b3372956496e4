package batch

import (
	"context"
	"path/filepath"
	"testing"

	"outreach-engine/internal/config"
	"outreach-engine/internal/domain"
)

type fakeFinder struct {
	contacts map[string][]domain.Contact // keyed by company name
	calls    []string
}

func (f *fakeFinder) FindContacts(_ context.Context, companyName, _, _ string) []domain.Contact {
	f.calls = append(f.calls, companyName)
	return f.contacts[companyName]
}

func buildToFile(t *testing.T, cfg config.Config, finder ContactFinder, raws []domain.RawJobRecord) (int, []domain.JobContactRow) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.csv")

	w, err := NewBatchWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	n, err := BuildJobList(context.Background(), cfg, finder, raws, w)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	rows, err := ReadBatch(path)
	if err != nil {
		t.Fatal(err)
	}
	return n, rows
}

func TestBuildJobListRowPerContact(t *testing.T) {
	cfg := config.Default()
	finder := &fakeFinder{contacts: map[string][]domain.Contact{
		"Acme": {
			{Name: "Maria Lopez", Email: "maria@acme.com", Position: "Head of Data Science", Source: domain.SourceProvider},
			{Name: "Pat Kim", Email: "pat@acme.com", Position: "Recruiter", Source: domain.SourceProvider},
		},
		"Beta": {
			{Name: "Hiring Manager", Email: "jobs@beta.io", Position: "Hiring Manager", Source: domain.SourceFallback},
		},
	}}

	raws := []domain.RawJobRecord{
		{JobTitle: "Data Scientist", JobURL: "https://acme.com/jobs/1", Company: "Acme", CompanyURL: "https://acme.com"},
		{JobTitle: "ML Engineer", JobURL: "https://beta.io/jobs/2", Company: "Beta", CompanyDomain: "beta.io"},
	}

	n, rows := buildToFile(t, cfg, finder, raws)
	if n != 3 {
		t.Fatalf("expected 3 contact rows, got %d", n)
	}
	if len(rows) != 3 {
		t.Fatalf("csv should hold the same 3 rows, got %d", len(rows))
	}

	if rows[0].JobID != "1" || rows[1].JobID != "1" || rows[2].JobID != "2" {
		t.Errorf("job ids should be assigned per job in order: %q %q %q",
			rows[0].JobID, rows[1].JobID, rows[2].JobID)
	}
	if rows[0].CompanyDomain != "acme.com" {
		t.Errorf("inferred domain should be recorded, got %q", rows[0].CompanyDomain)
	}
	if rows[2].Source != "fallback" {
		t.Errorf("fallback contact should carry source fallback, got %q", rows[2].Source)
	}
}

func TestBuildJobListSkips(t *testing.T) {
	cfg := config.Default()
	finder := &fakeFinder{contacts: map[string][]domain.Contact{
		"Acme": {{Email: "jobs@acme.com", Source: domain.SourceFallback}},
	}}

	raws := []domain.RawJobRecord{
		{JobTitle: "", JobURL: "https://x.com/1", Company: "NoTitle"},
		{JobTitle: "Data Scientist", JobURL: "", Company: "NoURL"},
		{JobTitle: "Sales Manager", JobURL: "https://x.com/2", Company: "WrongRole"},
		{JobTitle: "Data Scientist", JobURL: "https://y.com/3", Company: "NoContacts"},
		{JobTitle: "Data Scientist", JobURL: "https://acme.com/4", Company: "Acme"},
	}

	n, rows := buildToFile(t, cfg, finder, raws)
	if n != 1 || len(rows) != 1 {
		t.Fatalf("expected exactly 1 row to survive, got n=%d rows=%d", n, len(rows))
	}
	if rows[0].Company != "Acme" {
		t.Errorf("wrong surviving row: %+v", rows[0])
	}

	// filtered and malformed rows must not trigger enrichment
	for _, called := range finder.calls {
		if called == "NoTitle" || called == "NoURL" || called == "WrongRole" {
			t.Errorf("enrichment called for a skipped row: %s", called)
		}
	}
}

func TestBuildJobListPreservesExplicitJobID(t *testing.T) {
	cfg := config.Default()
	finder := &fakeFinder{contacts: map[string][]domain.Contact{
		"Acme": {{Email: "jobs@acme.com", Source: domain.SourceFallback}},
	}}

	raws := []domain.RawJobRecord{
		{JobID: "JOB-99", JobTitle: "Data Scientist", JobURL: "https://acme.com/jobs/99", Company: "Acme"},
	}

	_, rows := buildToFile(t, cfg, finder, raws)
	if len(rows) != 1 || rows[0].JobID != "JOB-99" {
		t.Errorf("explicit job_id should pass through, got %+v", rows)
	}
}

func TestBuildJobListDropsContactsWithoutEmail(t *testing.T) {
	cfg := config.Default()
	finder := &fakeFinder{contacts: map[string][]domain.Contact{
		"Acme": {
			{Name: "No Email", Position: "Recruiter", Source: domain.SourceProvider},
			{Name: "Has Email", Email: "has@acme.com", Position: "Recruiter", Source: domain.SourceProvider},
		},
	}}

	raws := []domain.RawJobRecord{
		{JobTitle: "Data Scientist", JobURL: "https://acme.com/jobs/1", Company: "Acme"},
	}

	n, rows := buildToFile(t, cfg, finder, raws)
	if n != 1 || len(rows) != 1 || rows[0].ContactEmail != "has@acme.com" {
		t.Errorf("contact without email should be dropped: n=%d rows=%+v", n, rows)
	}
}

package batch

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"outreach-engine/internal/domain"
)

// BatchHeader is the fixed column set of the job-contact batch CSV. It is
// written even when zero rows qualify so downstream readers always see a
// well-formed file.
var BatchHeader = []string{
	"job_id",
	"job_title",
	"job_url",
	"company",
	"company_domain",
	"company_url",
	"location",
	"contact_name",
	"contact_email",
	"contact_role",
	"source",
}

// ReadRawJobs loads the raw jobs CSV. The header row is required; column
// order is free and unknown columns are ignored. All-whitespace rows are
// skipped.
func ReadRawJobs(path string) ([]domain.RawJobRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read raw jobs csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("raw jobs csv %q has no header row", path)
	}

	col := headerIndex(rows[0])
	if _, ok := col["job_title"]; !ok {
		return nil, fmt.Errorf("raw jobs csv %q is missing a job_title column", path)
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []domain.RawJobRecord
	for _, row := range rows[1:] {
		rec := domain.RawJobRecord{
			JobID:         field(row, "job_id"),
			JobTitle:      field(row, "job_title"),
			JobURL:        field(row, "job_url"),
			Company:       field(row, "company"),
			CompanyURL:    field(row, "company_url"),
			CompanyDomain: field(row, "company_domain"),
			Location:      field(row, "location"),
		}
		if rec.Blank() {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// BatchWriter streams JobContactRows to the output CSV. It takes a file lock
// next to the output so a double-launched build can't interleave writes.
type BatchWriter struct {
	f    *os.File
	w    *csv.Writer
	lock *flock.Flock
}

func NewBatchWriter(path string) (*BatchWriter, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	lock := flock.New(path + ".lock")
	got, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !got {
		return nil, fmt.Errorf("another build is writing %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(BatchHeader); err != nil {
		_ = f.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return &BatchWriter{f: f, w: w, lock: lock}, nil
}

func (bw *BatchWriter) Write(row domain.JobContactRow) error {
	return bw.w.Write([]string{
		row.JobID,
		row.JobTitle,
		row.JobURL,
		row.Company,
		row.CompanyDomain,
		row.CompanyURL,
		row.Location,
		row.ContactName,
		row.ContactEmail,
		row.ContactRole,
		row.Source,
	})
}

func (bw *BatchWriter) Close() error {
	bw.w.Flush()
	flushErr := bw.w.Error()
	closeErr := bw.f.Close()
	_ = bw.lock.Unlock()

	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

// ReadBatch loads a batch CSV written by BatchWriter (or by hand, as long as
// the header names match).
func ReadBatch(path string) ([]domain.JobContactRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read batch csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("batch csv %q has no header row", path)
	}

	col := headerIndex(rows[0])
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []domain.JobContactRow
	for _, row := range rows[1:] {
		rec := domain.JobContactRow{
			JobID:         field(row, "job_id"),
			JobTitle:      field(row, "job_title"),
			JobURL:        field(row, "job_url"),
			Company:       field(row, "company"),
			CompanyDomain: field(row, "company_domain"),
			CompanyURL:    field(row, "company_url"),
			Location:      field(row, "location"),
			ContactName:   field(row, "contact_name"),
			ContactEmail:  field(row, "contact_email"),
			ContactRole:   field(row, "contact_role"),
			Source:        field(row, "source"),
		}
		out = append(out, rec)
	}
	return out, nil
}

func headerIndex(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return col
}

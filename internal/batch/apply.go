package batch

import (
	"context"
	"log"

	"outreach-engine/internal/config"
	"outreach-engine/internal/domain"
	"outreach-engine/internal/gen"
	"outreach-engine/internal/scrape"
)

// Generator is the email-generation collaborator. A failed generation is an
// error, never a sentinel body string.
type Generator interface {
	Draft(ctx context.Context, req gen.Request) (gen.Draft, error)
}

// DraftSaver is the draft-creation collaborator (Gmail API or IMAP APPEND).
type DraftSaver interface {
	SaveDraft(ctx context.Context, to, subject, htmlBody, resumePath string) (draftID string, err error)
}

// JDFetchFunc fetches job description text, returning "" on any failure.
type JDFetchFunc func(ctx context.Context, jobURL string) string

// ApplyBatch walks the batch CSV rows in order, generating one email and one
// draft per row. Every failure is contained at the row boundary: logged with
// the offending address and skipped. Returns the number of drafts created.
func ApplyBatch(ctx context.Context, cfg config.Config, rows []domain.JobContactRow,
	g Generator, saver DraftSaver, fetchJD JDFetchFunc, resumePath string) int {

	created := 0
	for i, row := range rows {
		log.Printf("[apply] === %d/%d ===", i+1, len(rows))
		if applyRow(ctx, cfg, row, i, g, saver, fetchJD, resumePath) {
			created++
		}
	}
	return created
}

func applyRow(ctx context.Context, cfg config.Config, row domain.JobContactRow, idx int,
	g Generator, saver DraftSaver, fetchJD JDFetchFunc, resumePath string) (ok bool) {

	// one bad row must never stop the batch
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[apply] row %d: panic processing %s: %v", idx+1, row.ContactEmail, r)
			ok = false
		}
	}()

	if row.JobTitle == "" || row.JobURL == "" || row.Company == "" || row.ContactEmail == "" {
		log.Printf("[apply] row %d: missing required fields (title=%q url=%q company=%q email=%q), skipping",
			idx+1, row.JobTitle, row.JobURL, row.Company, row.ContactEmail)
		return false
	}

	manager := row.ContactName
	if manager == "" {
		manager = "Hiring Manager"
	}

	log.Printf("[apply] job_id=%s %q @ %s -> %s <%s>", row.JobID, row.JobTitle, row.Company, manager, row.ContactEmail)

	jd := ""
	if fetchJD != nil && scrape.ShouldScrapeJD(cfg, row.JobURL) {
		log.Printf("[apply] fetching job description from %s", row.JobURL)
		jd = fetchJD(ctx, row.JobURL)
		if jd == "" {
			log.Printf("[apply] empty JD, continuing with background-only context")
		}
	} else {
		log.Printf("[apply] skipping JD scrape for %s", row.JobURL)
	}

	draft, err := g.Draft(ctx, gen.Request{
		JobTitle:       row.JobTitle,
		JobURL:         row.JobURL,
		ManagerName:    manager,
		Company:        row.Company,
		CompanyURL:     row.CompanyURL,
		JobDescription: jd,
	})
	if err != nil {
		log.Printf("[apply] generation failed for %s: %v", row.ContactEmail, err)
		return false
	}

	id, err := saver.SaveDraft(ctx, row.ContactEmail, draft.Subject, draft.HTML, resumePath)
	if err != nil {
		log.Printf("[apply] failed to create draft for %s: %v", row.ContactEmail, err)
		return false
	}

	log.Printf("[apply] created draft %s to %s for %q at %s", id, row.ContactEmail, row.JobTitle, row.Company)
	return true
}

package batch

import (
	"context"
	"log"
	"strconv"

	"outreach-engine/internal/config"
	"outreach-engine/internal/domain"
	"outreach-engine/internal/scrape"
)

// ContactFinder is the contact enrichment collaborator. Implementations must
// be best-effort: a failed lookup returns zero contacts, never panics or
// aborts.
type ContactFinder interface {
	FindContacts(ctx context.Context, companyName, companyURL, companyDomain string) []domain.Contact
}

// BuildJobList runs raw job rows through the title filter and contact
// enrichment, emitting one output row per (job, contact) pair. Rows are
// processed strictly in input order; a bad row is logged and skipped, never
// fatal. Returns the number of contact rows written.
func BuildJobList(ctx context.Context, cfg config.Config, finder ContactFinder, raws []domain.RawJobRecord, w *BatchWriter) (int, error) {
	written := 0
	jobCounter := 0

	for i, raw := range raws {
		if raw.JobTitle == "" || raw.JobURL == "" || raw.Company == "" {
			log.Printf("[build] row %d: missing basic fields (title=%q url=%q company=%q), skipping",
				i+1, raw.JobTitle, raw.JobURL, raw.Company)
			continue
		}

		if keep, reason := scrape.RelevantTitle(cfg, raw.JobTitle); !keep {
			log.Printf("[build] row %d: filtered (%s) title=%q company=%q", i+1, reason, raw.JobTitle, raw.Company)
			continue
		}

		jobCounter++
		jobID := raw.JobID
		if jobID == "" {
			jobID = strconv.Itoa(jobCounter)
		}

		dom := scrape.InferDomain(raw.CompanyDomain, raw.CompanyURL, raw.JobURL)

		log.Printf("[build] job %s: %q @ %s", jobID, raw.JobTitle, raw.Company)
		contacts := finder.FindContacts(ctx, raw.Company, raw.CompanyURL, dom)
		if len(contacts) == 0 {
			log.Printf("[build] no contacts found for %q, skipping this job", raw.Company)
			continue
		}

		for _, c := range contacts {
			if c.Email == "" {
				continue
			}
			row := domain.JobContactRow{
				JobID:         jobID,
				JobTitle:      raw.JobTitle,
				JobURL:        raw.JobURL,
				Company:       raw.Company,
				CompanyDomain: dom,
				CompanyURL:    raw.CompanyURL,
				Location:      raw.Location,
				ContactName:   c.Name,
				ContactEmail:  c.Email,
				ContactRole:   c.Position,
				Source:        string(c.Source),
			}
			if err := w.Write(row); err != nil {
				return written, err
			}
			written++
		}
	}

	return written, nil
}

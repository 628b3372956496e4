package scrape

import (
	"strings"

	"outreach-engine/internal/config"
)

// RelevantTitle decides whether a job title is worth pursuing. Negative
// keywords always win over positives; the literal "data scientist" acts as a
// catch-all when no configured positive matches.
func RelevantTitle(cfg config.Config, title string) (keep bool, reason string) {
	t := strings.ToLower(strings.TrimSpace(title))

	for _, bad := range cfg.Filters.NegativeTitles {
		bad = strings.ToLower(strings.TrimSpace(bad))
		if bad == "" {
			continue
		}
		if strings.Contains(t, bad) {
			return false, "negative_keyword"
		}
	}

	for _, good := range cfg.Filters.PositiveTitles {
		good = strings.ToLower(strings.TrimSpace(good))
		if good == "" {
			continue
		}
		if strings.Contains(t, good) {
			return true, ""
		}
	}

	if strings.Contains(t, "data scientist") {
		return true, ""
	}

	return false, "no_keyword_match"
}

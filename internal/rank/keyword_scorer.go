package rank

import (
	"sort"
	"strings"

	"outreach-engine/internal/config"
	"outreach-engine/internal/domain"
)

// KeywordScorer scores a contact by how many configured role keywords appear
// in its position. Zero means the role is irrelevant and the contact is
// dropped entirely, not ranked low.
type KeywordScorer struct {
	Cfg config.Config
}

func (s KeywordScorer) Score(c domain.Contact) int {
	pos := strings.ToLower(c.Position)
	if pos == "" {
		return 0
	}

	score := 0
	for _, kw := range s.Cfg.Contacts.RoleKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(pos, kw) {
			score++
		}
	}
	return score
}

// Top scores, hard-filters zeros, and returns the best max contacts in
// descending score order. Ties keep input order.
func Top(scorer Scorer, contacts []domain.Contact, max int) []domain.Contact {
	var scored []domain.Contact
	for _, c := range contacts {
		c.Score = scorer.Score(c)
		if c.Score == 0 {
			continue
		}
		scored = append(scored, c)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if max > 0 && len(scored) > max {
		scored = scored[:max]
	}
	return scored
}

package rank

import "outreach-engine/internal/domain"

type Scorer interface {
	Score(c domain.Contact) int
}

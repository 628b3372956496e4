package rank

import (
	"testing"

	"outreach-engine/internal/config"
	"outreach-engine/internal/domain"
)

func TestKeywordScorerScore(t *testing.T) {
	s := KeywordScorer{Cfg: config.Default()}

	tests := []struct {
		position string
		want     int
	}{
		{"Sales Representative", 0},
		{"", 0},
		{"Technical Recruiter", 1},
		{"Head of Data Science", 3}, // data, science, head of
		{"VP of Machine Learning", 2}, // machine learning, vp
		{"Accountant", 0},
	}
	for _, tt := range tests {
		t.Run(tt.position, func(t *testing.T) {
			if got := s.Score(domain.Contact{Position: tt.position}); got != tt.want {
				t.Errorf("Score(%q) = %d, want %d", tt.position, got, tt.want)
			}
		})
	}
}

func TestTopFiltersZeroAndRanks(t *testing.T) {
	s := KeywordScorer{Cfg: config.Default()}
	in := []domain.Contact{
		{Email: "a@x.com", Position: "Sales Representative"},
		{Email: "b@x.com", Position: "Technical Recruiter"},
		{Email: "c@x.com", Position: "Head of Data Science"},
		{Email: "d@x.com", Position: ""},
	}

	got := Top(s, in, 5)
	if len(got) != 2 {
		t.Fatalf("expected 2 contacts after zero-score filtering, got %d", len(got))
	}
	if got[0].Email != "c@x.com" || got[1].Email != "b@x.com" {
		t.Errorf("wrong order: %q then %q", got[0].Email, got[1].Email)
	}
	if got[0].Score == 0 || got[1].Score == 0 {
		t.Error("returned contacts should carry their computed scores")
	}
}

func TestTopRespectsMaxAndTies(t *testing.T) {
	s := KeywordScorer{Cfg: config.Default()}
	in := []domain.Contact{
		{Email: "first@x.com", Position: "Recruiter"},
		{Email: "second@x.com", Position: "Talent Partner"},
		{Email: "third@x.com", Position: "Hiring Coordinator"},
	}

	got := Top(s, in, 2)
	if len(got) != 2 {
		t.Fatalf("expected max=2 to cap the result, got %d", len(got))
	}
	// all score 1; stable sort keeps input order
	if got[0].Email != "first@x.com" || got[1].Email != "second@x.com" {
		t.Errorf("ties should preserve input order, got %q then %q", got[0].Email, got[1].Email)
	}
}

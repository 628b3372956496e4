package domain

type ContactSource string

const (
	SourceProvider ContactSource = "provider"
	SourceFallback ContactSource = "fallback"
)

// Contact is a scored candidate recipient for one company domain.
// Email is the validity key: contacts with an empty email never reach output.
type Contact struct {
	Name     string
	Email    string
	Position string
	Score    int
	Source   ContactSource
}

// JobContactRow is the cross product of one job and one contact, the unit
// written to the batch CSV.
type JobContactRow struct {
	JobID         string
	JobTitle      string
	JobURL        string
	Company       string
	CompanyDomain string
	CompanyURL    string
	Location      string
	ContactName   string
	ContactEmail  string
	ContactRole   string
	Source        string
}

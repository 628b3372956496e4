package domain

// RawJobRecord is one row of the raw jobs CSV. All fields are externally
// supplied and untrusted; required-field checks happen in the builder.
type RawJobRecord struct {
	JobID         string
	JobTitle      string
	JobURL        string
	Company       string
	CompanyURL    string
	CompanyDomain string
	Location      string
}

// Blank reports whether every field is empty after trimming, i.e. an
// all-whitespace CSV row.
func (r RawJobRecord) Blank() bool {
	return r.JobID == "" && r.JobTitle == "" && r.JobURL == "" &&
		r.Company == "" && r.CompanyURL == "" && r.CompanyDomain == "" &&
		r.Location == ""
}

package scrape

import "testing"

func TestInferDomain(t *testing.T) {
	tests := []struct {
		name           string
		explicitDomain string
		companyURL     string
		jobURL         string
		want           string
	}{
		{
			name:           "explicit domain wins",
			explicitDomain: "acme.com",
			companyURL:     "https://other.com",
			jobURL:         "https://jobs.other.com",
			want:           "acme.com",
		},
		{
			name:           "explicit domain normalized",
			explicitDomain: "https://www.Acme.com/careers",
			want:           "acme.com",
		},
		{
			name:       "company url host extracted",
			companyURL: "https://www.Acme.com/careers",
			want:       "acme.com",
		},
		{
			name:       "schemeless company url",
			companyURL: "acme.com/about",
			want:       "acme.com",
		},
		{
			name:   "job url used as last resort",
			jobURL: "https://careers.acme.com/roles/42",
			want:   "careers.acme.com",
		},
		{
			name:   "greenhouse job url rejected",
			jobURL: "https://boards.greenhouse.io/acme",
			want:   "",
		},
		{
			name:   "lever job url rejected",
			jobURL: "https://jobs.lever.co/acme/123",
			want:   "",
		},
		{
			name:   "ashby job url rejected",
			jobURL: "https://jobs.ashbyhq.com/acme",
			want:   "",
		},
		{
			name: "all empty",
			want: "",
		},
		{
			name:       "malformed urls degrade to empty",
			companyURL: "http://[::1]:namedport",
			jobURL:     "://nope",
			want:       "",
		},
		{
			name:       "port stripped",
			companyURL: "https://acme.com:8443/jobs",
			want:       "acme.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferDomain(tt.explicitDomain, tt.companyURL, tt.jobURL)
			if got != tt.want {
				t.Errorf("InferDomain(%q, %q, %q) = %q, want %q",
					tt.explicitDomain, tt.companyURL, tt.jobURL, got, tt.want)
			}
		})
	}
}

func TestInferDomainIdempotent(t *testing.T) {
	inputs := []string{"acme.com", "careers.acme.com", "sub.domain.io"}
	for _, in := range inputs {
		once := InferDomain(in, "", "")
		twice := InferDomain(once, "", "")
		if once != twice {
			t.Errorf("InferDomain not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestIsBlockedDomain(t *testing.T) {
	tests := []struct {
		host string
		want bool
	}{
		{"greenhouse.io", true},
		{"boards.greenhouse.io", true},
		{"lever.co", true},
		{"jobs.ashbyhq.com", true},
		{"acme.com", false},
		{"notgreenhouse.io.acme.com", false},
	}
	for _, tt := range tests {
		if got := IsBlockedDomain(tt.host); got != tt.want {
			t.Errorf("IsBlockedDomain(%q) = %v, want %v", tt.host, got, tt.want)
		}
	}
}

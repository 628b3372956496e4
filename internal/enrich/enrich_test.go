package enrich

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"outreach-engine/internal/config"
	"outreach-engine/internal/domain"
)

func testConfig(baseURL string) config.Config {
	cfg := config.Default()
	cfg.Contacts.ProviderBaseURL = baseURL
	cfg.Contacts.MaxContacts = 3
	return cfg
}

func TestFindContactsNoAPIKey(t *testing.T) {
	e := New(testConfig("http://unused"), "", nil)

	got := e.FindContacts(context.Background(), "Acme", "https://acme.com", "")
	if len(got) != 1 {
		t.Fatalf("expected single fallback contact, got %d", len(got))
	}
	c := got[0]
	if c.Email != "jobs@acme.com" || c.Source != domain.SourceFallback || c.Name != "Hiring Manager" {
		t.Errorf("unexpected fallback contact: %+v", c)
	}
}

func TestFindContactsNoDomain(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider should not be called without a domain")
	}))
	defer ts.Close()

	e := New(testConfig(ts.URL), "key", nil)
	if got := e.FindContacts(context.Background(), "Mystery Co", "", ""); got != nil {
		t.Errorf("no inferable domain should yield zero contacts, got %+v", got)
	}

	// without an api key the domain is still required
	e = New(testConfig(ts.URL), "", nil)
	if got := e.FindContacts(context.Background(), "Mystery Co", "", ""); got != nil {
		t.Errorf("fallback without a domain should yield zero contacts, got %+v", got)
	}
}

func TestFindContactsProviderSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("domain"); got != "acme.com" {
			t.Errorf("domain param = %q, want acme.com", got)
		}
		if r.URL.Query().Get("api_key") == "" {
			t.Error("api_key param missing")
		}
		fmt.Fprint(w, `{"data":{"emails":[
			{"value":"maria@acme.com","first_name":"Maria","last_name":"Lopez","position":"Head of Data Science"},
			{"value":"sam@acme.com","first_name":"Sam","last_name":"Ng","position":"Sales Representative"},
			{"value":"pat@acme.com","first_name":"Pat","last_name":"Kim","position":"Technical Recruiter"},
			{"value":"","first_name":"No","last_name":"Email","position":"Recruiter"}
		]}}`)
	}))
	defer ts.Close()

	e := New(testConfig(ts.URL), "key", nil)
	got := e.FindContacts(context.Background(), "Acme", "https://acme.com", "")

	if len(got) != 2 {
		t.Fatalf("expected 2 relevant contacts, got %d: %+v", len(got), got)
	}
	if got[0].Email != "maria@acme.com" {
		t.Errorf("highest-scoring contact should rank first, got %q", got[0].Email)
	}
	if got[1].Email != "pat@acme.com" {
		t.Errorf("second contact should be the recruiter, got %q", got[1].Email)
	}
	for _, c := range got {
		if c.Source != domain.SourceProvider {
			t.Errorf("provider contacts must carry source %q, got %q", domain.SourceProvider, c.Source)
		}
	}
	if got[0].Name != "Maria Lopez" {
		t.Errorf("name should join first and last, got %q", got[0].Name)
	}
}

func TestFindContactsDegradesToFallback(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "provider error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"errors":[{"details":"rate limited"}]}`, http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"data":`)
			},
		},
		{
			name: "no emails",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"data":{"emails":[]}}`)
			},
		},
		{
			name: "only irrelevant roles",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"data":{"emails":[{"value":"sam@acme.com","position":"Sales Representative"}]}}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			e := New(testConfig(ts.URL), "key", nil)
			got := e.FindContacts(context.Background(), "Acme", "", "acme.com")
			if len(got) != 1 || got[0].Email != "jobs@acme.com" || got[0].Source != domain.SourceFallback {
				t.Errorf("expected generic fallback, got %+v", got)
			}
		})
	}
}

func TestFindContactsRespectsMaxContacts(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"emails":[
			{"value":"a@acme.com","position":"Data Engineer"},
			{"value":"b@acme.com","position":"Data Analyst"},
			{"value":"c@acme.com","position":"Data Scientist"},
			{"value":"d@acme.com","position":"Recruiter"},
			{"value":"e@acme.com","position":"Talent Partner"}
		]}}`)
	}))
	defer ts.Close()

	cfg := testConfig(ts.URL)
	cfg.Contacts.MaxContacts = 2
	e := New(cfg, "key", nil)

	got := e.FindContacts(context.Background(), "Acme", "", "acme.com")
	if len(got) != 2 {
		t.Errorf("expected max_contacts cap of 2, got %d", len(got))
	}
}

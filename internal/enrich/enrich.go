package enrich

import (
	"context"
	"log"
	"strings"
	"time"

	"outreach-engine/internal/config"
	"outreach-engine/internal/domain"
	"outreach-engine/internal/rank"
	"outreach-engine/internal/scrape"
	"outreach-engine/internal/store"
)

// Enricher discovers likely hiring contacts for a company domain.
// Provider trouble of any kind degrades to the generic fallback contact,
// never to a batch failure.
type Enricher struct {
	cfg      config.Config
	provider *providerClient
	cache    *store.DB // nil unless --cache_db
}

// New builds an Enricher. An empty apiKey puts every lookup on the fallback
// path. cache may be nil.
func New(cfg config.Config, apiKey string, cache *store.DB) *Enricher {
	e := &Enricher{cfg: cfg, cache: cache}
	if apiKey != "" {
		timeout := time.Duration(cfg.Contacts.TimeoutSeconds) * time.Second
		e.provider = newProviderClient(cfg.Contacts.ProviderBaseURL, apiKey, timeout)
	}
	return e
}

// FindContacts resolves up to cfg.Contacts.MaxContacts contacts for the
// company. A company whose domain cannot be inferred yields zero contacts;
// a real domain always yields at least the generic fallback.
func (e *Enricher) FindContacts(ctx context.Context, companyName, companyURL, companyDomain string) []domain.Contact {
	dom := scrape.InferDomain(companyDomain, companyURL, "")

	if e.provider == nil {
		log.Printf("[hunter] no api key configured; using fallback contact for %q", companyName)
		return e.fallback(companyName, dom)
	}

	if dom == "" {
		log.Printf("[hunter] could not determine domain for %q, skipping", companyName)
		return nil
	}

	if cached, ok := e.cachedContacts(ctx, dom); ok {
		log.Printf("[hunter] cache hit for %s (%d contacts)", dom, len(cached))
		return cached
	}

	emails, err := e.provider.domainSearch(ctx, dom, e.cfg.Contacts.ProviderLimit)
	if err != nil {
		log.Printf("[hunter] lookup failed for domain=%s: %v", dom, err)
		return e.storeAndReturn(ctx, dom, e.fallback(companyName, dom))
	}
	if len(emails) == 0 {
		log.Printf("[hunter] no emails found for domain=%s, using fallback", dom)
		return e.storeAndReturn(ctx, dom, e.fallback(companyName, dom))
	}

	var raw []domain.Contact
	for _, em := range emails {
		if strings.TrimSpace(em.Value) == "" {
			continue
		}
		name := strings.TrimSpace(strings.TrimSpace(em.FirstName) + " " + strings.TrimSpace(em.LastName))
		raw = append(raw, domain.Contact{
			Name:     name,
			Email:    em.Value,
			Position: em.Position,
			Source:   domain.SourceProvider,
		})
	}

	top := rank.Top(rank.KeywordScorer{Cfg: e.cfg}, raw, e.cfg.Contacts.MaxContacts)
	if len(top) == 0 {
		log.Printf("[hunter] no relevant-role contacts for domain=%s, using fallback", dom)
		return e.storeAndReturn(ctx, dom, e.fallback(companyName, dom))
	}

	log.Printf("[hunter] selected %d contacts for %q (%s)", len(top), companyName, dom)
	return e.storeAndReturn(ctx, dom, top)
}

// fallback synthesizes the single generic contact, or nothing when there is
// no real domain to address it at.
func (e *Enricher) fallback(companyName, dom string) []domain.Contact {
	if dom == "" {
		return nil
	}
	email := e.cfg.Contacts.FallbackLocalPart + "@" + dom
	log.Printf("[hunter-fallback] using generic contact %s for %q", email, companyName)
	return []domain.Contact{{
		Name:     "Hiring Manager",
		Email:    email,
		Position: "Hiring Manager",
		Score:    1,
		Source:   domain.SourceFallback,
	}}
}

func (e *Enricher) cachedContacts(ctx context.Context, dom string) ([]domain.Contact, bool) {
	if e.cache == nil {
		return nil, false
	}
	contacts, ok, err := store.GetContacts(ctx, e.cache, dom)
	if err != nil {
		log.Printf("[hunter] cache read for %s: %v", dom, err)
		return nil, false
	}
	return contacts, ok
}

func (e *Enricher) storeAndReturn(ctx context.Context, dom string, contacts []domain.Contact) []domain.Contact {
	if e.cache != nil {
		if err := store.PutContacts(ctx, e.cache, dom, contacts); err != nil {
			log.Printf("[hunter] cache write for %s: %v", dom, err)
		}
	}
	return contacts
}

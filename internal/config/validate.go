package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy: keyword lists are trimmed,
// lowercased and deduped, numeric knobs clamped back to defaults when unset.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.ToLower(strings.TrimSpace(x))
			if x == "" || seen[x] {
				continue
			}
			seen[x] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Filters.PositiveTitles = trimList(out.Filters.PositiveTitles)
	out.Filters.NegativeTitles = trimList(out.Filters.NegativeTitles)
	out.Contacts.RoleKeywords = trimList(out.Contacts.RoleKeywords)
	out.Scrape.SkipJDHosts = trimList(out.Scrape.SkipJDHosts)

	def := Default()
	if out.Contacts.MaxContacts <= 0 {
		out.Contacts.MaxContacts = def.Contacts.MaxContacts
	}
	if out.Contacts.ProviderLimit <= 0 {
		out.Contacts.ProviderLimit = def.Contacts.ProviderLimit
	}
	if out.Contacts.TimeoutSeconds <= 0 {
		out.Contacts.TimeoutSeconds = def.Contacts.TimeoutSeconds
	}
	if out.Scrape.MaxChars <= 0 {
		out.Scrape.MaxChars = def.Scrape.MaxChars
	}
	if out.Scrape.TimeoutSeconds <= 0 {
		out.Scrape.TimeoutSeconds = def.Scrape.TimeoutSeconds
	}
	if out.Scrape.ReqPerSec <= 0 {
		out.Scrape.ReqPerSec = def.Scrape.ReqPerSec
	}
	if out.Scrape.Burst <= 0 {
		out.Scrape.Burst = def.Scrape.Burst
	}
	if out.LLM.TimeoutSeconds <= 0 {
		out.LLM.TimeoutSeconds = def.LLM.TimeoutSeconds
	}

	if strings.TrimSpace(out.Contacts.ProviderBaseURL) == "" {
		res.addErr("contacts.provider_base_url must not be empty")
	}
	if strings.TrimSpace(out.Contacts.FallbackLocalPart) == "" {
		res.addErr("contacts.fallback_local_part must not be empty")
	}
	if len(out.Filters.PositiveTitles) == 0 {
		res.addWarn("filters.positive_titles is empty; only the literal \"data scientist\" catch-all will match.")
	}
	if len(out.Contacts.RoleKeywords) == 0 {
		res.addWarn("contacts.role_keywords is empty; every provider contact will be discarded and the fallback used.")
	}

	switch out.Mail.Transport {
	case "gmail_api", "imap":
	default:
		res.addErr("mail.transport must be gmail_api or imap, got %q", out.Mail.Transport)
	}
	if out.Mail.Transport == "imap" {
		if strings.TrimSpace(out.Mail.IMAPHost) == "" {
			res.addErr("mail.imap_host is required when mail.transport=imap")
		}
		if strings.TrimSpace(out.Mail.Username) == "" {
			res.addErr("mail.username is required when mail.transport=imap")
		}
	}

	if strings.TrimSpace(out.LLM.BaseURL) == "" {
		res.addErr("llm.base_url must not be empty")
	}
	if strings.TrimSpace(out.LLM.Model) == "" {
		res.addErr("llm.model must not be empty")
	}

	return out, res
}

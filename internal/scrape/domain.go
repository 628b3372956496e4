package scrape

import (
	"net/url"
	"strings"
)

// ATS / job-board hosts that must never be mistaken for an employer's own
// domain when inferring it from a job posting URL.
var atsBlocklist = []string{
	"greenhouse.io",
	"lever.co",
	"ashbyhq.com",
}

// InferDomain derives a normalized company domain from, in priority order,
// an explicit domain, a company URL, or a job posting URL. The result never
// carries a scheme, a leading "www.", or a path. Malformed input degrades to
// "" rather than an error.
func InferDomain(explicitDomain, companyURL, jobURL string) string {
	if d := normalizeDomain(explicitDomain); d != "" {
		return d
	}

	if h := hostFromURL(companyURL); h != "" {
		return h
	}

	if h := hostFromURL(jobURL); h != "" && !IsBlockedDomain(h) {
		return h
	}
	return ""
}

// normalizeDomain cleans an explicitly supplied domain: strip scheme, strip
// "www.", cut at the first slash, lowercase.
func normalizeDomain(d string) string {
	d = strings.ToLower(strings.TrimSpace(d))
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "www.")
	if i := strings.IndexByte(d, '/'); i >= 0 {
		d = d[:i]
	}
	return d
}

func hostFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.ToLower(u.Host)
	host = strings.TrimPrefix(host, "www.")
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	return host
}

func IsBlockedDomain(host string) bool {
	for _, b := range atsBlocklist {
		if host == b || strings.HasSuffix(host, "."+b) {
			return true
		}
	}
	return false
}

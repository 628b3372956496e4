package scrape

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"outreach-engine/internal/config"
	"outreach-engine/internal/scrape/util"
)

// attribute markers that tend to wrap the main posting content
var jdBlockMarkers = []string{"job", "description", "posting", "position", "content", "main"}

const jdMinBlockLen = 400

// JDFetcher pulls job description text off a posting page, best-effort.
// Any failure yields "" so callers can continue with background-only context.
type JDFetcher struct {
	cfg     config.Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func NewJDFetcher(cfg config.Config) *JDFetcher {
	return &JDFetcher{
		cfg:     cfg,
		hc:      &http.Client{Timeout: time.Duration(cfg.Scrape.TimeoutSeconds) * time.Second},
		limiter: util.NewHostLimiter(cfg.Scrape.ReqPerSec, cfg.Scrape.Burst),
	}
}

// ShouldScrapeJD reports whether the posting host is worth fetching at all.
// JS- or login-heavy hosts (linkedin by default) are skipped.
func ShouldScrapeJD(cfg config.Config, jobURL string) bool {
	host := hostFromURL(jobURL)
	if host == "" {
		return false
	}
	for _, skip := range cfg.Scrape.SkipJDHosts {
		skip = strings.ToLower(strings.TrimSpace(skip))
		if skip == "" {
			continue
		}
		if host == skip || strings.HasSuffix(host, "."+skip) {
			return false
		}
	}
	return true
}

func (f *JDFetcher) Fetch(ctx context.Context, jobURL string) string {
	if err := f.limiter.WaitURL(ctx, jobURL); err != nil {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, jobURL, nil)
	if err != nil {
		log.Printf("[scraper] bad url %q: %v", jobURL, err)
		return ""
	}
	req.Header.Set("User-Agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := f.hc.Do(req)
	if err != nil {
		log.Printf("[scraper] fetch %q: %v", jobURL, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[scraper] fetch %q: status %d", jobURL, resp.StatusCode)
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		log.Printf("[scraper] parse %q: %v", jobURL, err)
		return ""
	}

	raw := extractJobBlock(doc)
	if raw == "" {
		log.Printf("[scraper] no job block on %q, using whole page", jobURL)
		raw = textLines(doc.Find("body"))
	}

	return util.Truncate(util.CleanBlock(raw), f.cfg.Scrape.MaxChars)
}

// extractJobBlock looks for the section/div/article whose id or class
// mentions a posting marker and picks the longest reasonable one.
func extractJobBlock(doc *goquery.Document) string {
	var best string

	doc.Find("section, div, article").Each(func(_ int, sel *goquery.Selection) {
		id, _ := sel.Attr("id")
		class, _ := sel.Attr("class")
		attrs := strings.ToLower(id + " " + class)

		hit := false
		for _, m := range jdBlockMarkers {
			if strings.Contains(attrs, m) {
				hit = true
				break
			}
		}
		if !hit {
			return
		}

		text := textLines(sel)
		if len(text) > jdMinBlockLen && len(text) > len(best) {
			best = text
		}
	})

	return best
}

// textLines extracts the selection's text with one text node per line,
// skipping script/style content.
func textLines(sel *goquery.Selection) string {
	var lines []string

	var walk func(s *goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, c *goquery.Selection) {
			switch goquery.NodeName(c) {
			case "#text":
				if t := strings.TrimSpace(c.Text()); t != "" {
					lines = append(lines, t)
				}
			case "script", "style", "noscript", "#comment":
			default:
				walk(c)
			}
		})
	}
	walk(sel)

	return strings.Join(lines, "\n")
}

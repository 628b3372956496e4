package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"outreach-engine/internal/scrape/util"
)

// providerClient talks to a Hunter-style domain-search endpoint. One attempt
// per lookup; the orchestrator treats every failure as recoverable.
type providerClient struct {
	baseURL string
	apiKey  string
	hc      *http.Client
	limiter *util.HostLimiter
}

type providerEmail struct {
	Value     string `json:"value"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
}

type domainSearchResponse struct {
	Data struct {
		Emails []providerEmail `json:"emails"`
	} `json:"data"`
}

func newProviderClient(baseURL, apiKey string, timeout time.Duration) *providerClient {
	return &providerClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		hc:      &http.Client{Timeout: timeout},
		limiter: util.NewHostLimiter(1, 2),
	}
}

func (c *providerClient) domainSearch(ctx context.Context, dom string, limit int) ([]providerEmail, error) {
	q := url.Values{}
	q.Set("domain", dom)
	q.Set("api_key", c.apiKey)
	q.Set("limit", strconv.Itoa(limit))

	u := c.baseURL + "/domain-search?" + q.Encode()

	if err := c.limiter.WaitURL(ctx, u); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("domain search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
		return nil, fmt.Errorf("domain search status %d: %s", resp.StatusCode, string(body))
	}

	var parsed domainSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("domain search decode: %w", err)
	}

	return parsed.Data.Emails, nil
}

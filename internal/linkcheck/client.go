// Package linkcheck verifies that publication identifiers resolve to
// reachable public URLs.
package linkcheck

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/idr/studytool/internal/study"
)

const (
	// PubMedBase is the public abstract URL prefix for PubMed IDs.
	PubMedBase = "https://www.ncbi.nlm.nih.gov/pubmed/"

	// PMCBase is the public article URL prefix for PubMed Central IDs.
	PMCBase = "https://www.ncbi.nlm.nih.gov/pmc/articles/"

	// DefaultTimeout is the default per-request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit keeps the checker polite towards NCBI and doi.org.
	RateLimit = 3.0
)

// Client is a rate-limited HTTP client for publication link checks.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a link check client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Result is the outcome of checking one publication link.
type Result struct {
	Label  string // identifier label, e.g. "PubMed ID"
	Value  string // raw identifier value
	URL    string // derived public URL
	Status int    // HTTP status, 0 on transport error
	Err    error  // transport error, nil otherwise
}

// OK reports whether the link resolved with a non-error HTTP status.
func (r Result) OK() bool {
	return r.Err == nil && r.Status < 400
}

// identifierURL derives the public URL for one identifier label/value pair.
// DOI values are already full URLs by the time reconciliation has accepted
// them; PubMed and PMC identifiers are bare and need their NCBI prefix.
func identifierURL(label, value string) string {
	switch label {
	case "PubMed ID":
		return PubMedBase + value
	case "PMC ID":
		return PMCBase + value + "/"
	default:
		return value
	}
}

// CheckPublications checks every identifier of every publication record in
// order, sequentially and rate-limited.
func (c *Client) CheckPublications(ctx context.Context, pubs []study.Record) ([]Result, error) {
	var out []Result
	for _, pub := range pubs {
		for _, label := range []string{"PubMed ID", "PMC ID", "DOI"} {
			value, ok := pub[label]
			if !ok {
				continue
			}
			res, err := c.check(ctx, label, value)
			if err != nil {
				return out, err
			}
			out = append(out, res)
		}
	}
	return out, nil
}

// check issues one rate-limited HEAD request for an identifier.
func (c *Client) check(ctx context.Context, label, value string) (Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Result{}, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	res := Result{Label: label, Value: value, URL: identifierURL(label, value)}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, res.URL, nil)
	if err != nil {
		return Result{}, fmt.Errorf("building request for %s: %w", res.URL, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		res.Err = err
		return res, nil
	}
	resp.Body.Close()
	res.Status = resp.StatusCode
	return res, nil
}

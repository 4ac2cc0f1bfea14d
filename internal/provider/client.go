// Package provider implements the outbound HTTP clients for the third-party
// search APIs the server proxies: OpenTripMap (attractions, destinations), Xotelo (hotels, rates),
// Amadeus (activities) and SerpAPI (image lookup).
//
// Each client normalizes its provider's response into domain types. Transport
// failures, non-2xx answers, and missing credentials wrap domain.ErrUpstream;
// a provider 404 wraps domain.ErrNotFound.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/domain"
)

// DefaultTimeout bounds a single provider call.
const DefaultTimeout = 10 * time.Second

// Options carries the settings shared by every provider client.
type Options struct {
	// BaseURL overrides the provider's production endpoint (used by tests).
	BaseURL string
	// HTTPClient defaults to a client with DefaultTimeout.
	HTTPClient *http.Client
	// RequestsPerSecond throttles outbound calls. Zero disables throttling.
	RequestsPerSecond float64
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// httpClient is the transport shared by the provider clients: a base URL,
// a rate limiter, and JSON decoding with uniform error wrapping.
type httpClient struct {
	name    string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	log     *slog.Logger
}

func newHTTPClient(name, defaultBase string, opts Options) *httpClient {
	c := &httpClient{
		name:    name,
		baseURL: strings.TrimRight(defaultBase, "/"),
		http:    opts.HTTPClient,
		limiter: rate.NewLimiter(rate.Inf, 1),
		log:     opts.Logger,
	}
	if opts.BaseURL != "" {
		c.baseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: DefaultTimeout}
	}
	if opts.RequestsPerSecond > 0 {
		burst := int(opts.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	c.log = c.log.With("provider", name)
	return c
}

// getJSON issues GET baseURL+path?query and decodes the JSON body into out.
func (c *httpClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", c.name, err)
	}
	return c.do(req, out)
}

// postForm issues a form-encoded POST and decodes the JSON body into out.
func (c *httpClient) postForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", c.name, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

func (c *httpClient) do(req *http.Request, out any) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return fmt.Errorf("%s: rate limit: %w: %w", c.name, domain.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", c.name, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(req.Context(), "provider call",
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", c.name, domain.ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: %w: status %d: %s", c.name, domain.ErrUpstream, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode: %w: %w", c.name, domain.ErrUpstream, err)
	}
	return nil
}

// notConfigured is returned by clients whose credentials are missing.
func notConfigured(name string) error {
	return fmt.Errorf("%s: %w: API key not configured", name, domain.ErrUpstream)
}

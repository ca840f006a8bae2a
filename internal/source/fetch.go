package source

import (
	"context"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

// DefaultUserAgent is a browser-identifying header; many job boards refuse
// obvious bot agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// DefaultFetchTimeout bounds a single page fetch.
const DefaultFetchTimeout = 10 * time.Second

// FetchClient wraps http.Client with the user agent and timeout the acquirer
// needs. The zero value is usable.
type FetchClient struct {
	HTTPClient *http.Client
	UserAgent  string
	// Timeout bounds the whole request. Zero means DefaultFetchTimeout.
	Timeout time.Duration
}

// FetchText issues a GET and returns the page flattened to plain text:
// script and style blocks dropped, remaining markup stripped, whitespace
// collapsed. Any network error, timeout, or non-2xx status yields a
// *FetchError.
func (c *FetchClient) FetchText(ctx context.Context, url string) (string, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	ua := c.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: url, Status: resp.StatusCode}
	}

	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	return htmlToText(b), nil
}

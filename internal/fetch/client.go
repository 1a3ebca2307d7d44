package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Default client values.
const (
	// DefaultAttemptTimeout bounds a single attempt end to end:
	// connect, request, and body read. A hung connection surfaces as
	// a timeout error the retry policy can act on.
	DefaultAttemptTimeout = 30 * time.Second

	// DefaultDialTimeout bounds TCP connection establishment.
	DefaultDialTimeout = 10 * time.Second

	// DefaultUserAgent identifies symposcan in HTTP requests so site
	// operators can recognize scraper traffic in their logs.
	DefaultUserAgent = "symposcan/1.0 (+https://github.com/symposcan/symposcan)"

	// DefaultMaxBodySize limits the response body read per page.
	// Proceedings pages are small; anything past this is not a page
	// we can use.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB
)

// Client fetches pages with bounded automatic retry on transient
// transport failures. One fetch is in flight at a time; the crawl is
// strictly sequential.
type Client struct {
	// httpClient is the underlying HTTP client with per-attempt
	// timeouts configured.
	httpClient *http.Client

	// policy is the retry policy applied around each Get.
	policy Policy

	// userAgent is the User-Agent header to send.
	userAgent string

	// maxBodySize limits the size of response bodies to read.
	maxBodySize int64
}

// Option configures a Client.
type Option func(*Client)

// WithPolicy sets the retry policy.
func WithPolicy(p Policy) Option {
	return func(c *Client) {
		c.policy = p
	}
}

// WithTimeout sets the whole-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum response body size.
func WithMaxBodySize(size int64) Option {
	return func(c *Client) {
		c.maxBodySize = size
	}
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client with explicit connect and read timeouts at
// every layer of the transport. The site is reported to hang
// intermittently even mid-response; ResponseHeaderTimeout and the
// whole-attempt timeout guarantee such hangs become retryable errors
// rather than stalling the run.
func New(opts ...Option) *Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: DefaultDialTimeout,
		}).DialContext,
		TLSHandshakeTimeout:   DefaultDialTimeout,
		ResponseHeaderTimeout: DefaultAttemptTimeout,
	}

	c := &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   DefaultAttemptTimeout,
		},
		policy:      DefaultPolicy(),
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get fetches a URL and returns the raw markup, retrying transient
// failures under the client's policy. After the retry budget is
// exhausted the last transport error propagates to the caller.
func (c *Client) Get(ctx context.Context, pageURL string) (string, error) {
	var markup string

	err := c.policy.Do(ctx, func() error {
		var attemptErr error
		markup, attemptErr = c.get(ctx, pageURL)
		return attemptErr
	})
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	return markup, nil
}

// get performs a single GET attempt.
func (c *Client) get(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize))
	if err != nil {
		return "", err
	}

	return string(body), nil
}

package breach

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the public Pwned Passwords range endpoint.
const DefaultBaseURL = "https://api.pwnedpasswords.com"

// maxRangeBody bounds how much of a range response is read. Real
// buckets are tens of kilobytes; a megabyte of headroom protects
// against a misbehaving endpoint without truncating legitimate data.
const maxRangeBody = 1 << 20

// Client queries a remote k-anonymity range oracle over HTTPS.
//
// Design decision: We use a struct with the http.Client rather than
// passing the client on each call because:
//  1. Connection pooling works better with a shared client
//  2. Timeout and TLS configuration should be consistent
//  3. Easier to test with httptest servers
type Client struct {
	// httpClient performs the requests. Replaceable for tests.
	httpClient *http.Client

	// baseURL is the oracle root; range queries go to baseURL/range/<prefix>.
	baseURL string

	// userAgent identifies this tool to the oracle, which the Pwned
	// Passwords API requires.
	userAgent string

	// addPadding asks the oracle to pad responses with fake entries so
	// that response size does not reveal bucket membership to a network
	// observer.
	addPadding bool

	// timeout is the per-request timeout.
	timeout time.Duration

	// retry enables a single retry after a short backoff when the
	// oracle is unreachable or answers with a retryable status.
	retry bool

	// retryBackoff is the pause before the retry attempt.
	retryBackoff time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a different oracle endpoint.
// Trailing slashes are trimmed.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithUserAgent sets the User-Agent header sent to the oracle.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithPadding controls response padding. Enabled by default; disable
// only when talking to a mirror that rejects the header.
func WithPadding(enabled bool) ClientOption {
	return func(c *Client) {
		c.addPadding = enabled
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRetry enables one retry after a short backoff when the oracle is
// unreachable or rate-limits the request. Disabled by default so
// interactive use fails fast.
func WithRetry(enabled bool) ClientOption {
	return func(c *Client) {
		c.retry = enabled
	}
}

// NewClient creates a range oracle client with sane defaults, adjusted
// by opts.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient:   &http.Client{},
		baseURL:      DefaultBaseURL,
		userAgent:    "passcheck",
		addPadding:   true,
		timeout:      10 * time.Second,
		retryBackoff: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LookupRange fetches the suffix bucket for a digest prefix. The
// request URL contains nothing but the five-character prefix; any
// transport failure or non-200 status maps to ErrOracleUnavailable so
// callers can uniformly treat the breach status as unknown.
func (c *Client) LookupRange(ctx context.Context, prefix string) (map[string]int, error) {
	if !validPrefix(prefix) {
		return nil, ErrInvalidPrefix
	}

	bucket, err := c.lookupOnce(ctx, prefix)
	if err == nil || !c.retry {
		return bucket, err
	}

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrOracleUnavailable, ctx.Err())
	case <-time.After(c.retryBackoff):
	}
	return c.lookupOnce(ctx, prefix)
}

// lookupOnce performs a single range request.
func (c *Client) lookupOnce(ctx context.Context, prefix string) (map[string]int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := c.baseURL + "/range/" + strings.ToUpper(prefix)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.addPadding {
		req.Header.Set("Add-Padding", "true")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOracleUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused, then surface the status.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxRangeBody))
		return nil, fmt.Errorf("%w: unexpected status %d", ErrOracleUnavailable, resp.StatusCode)
	}

	bucket, err := parseRangeResponse(io.LimitReader(resp.Body, maxRangeBody))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOracleUnavailable, err)
	}
	return bucket, nil
}

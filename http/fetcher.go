// Package http provides an HTTP-based implementation of escposdoc.Fetcher
// for the ESC/POS command reference site.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/escposdoc"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the root of the English ESC/POS command reference.
	DefaultBaseURL = "https://download4.epson.biz/sec_pubs/pos/reference_en/escpos/"

	// DefaultUserAgent identifies the client as a text browser. The site
	// rejects requests carrying Go's default user agent.
	DefaultUserAgent = "Links (2.30; Darwin 23.6.0 x86_64; LLVM/Clang 15.0; text)"

	// DefaultFetchTimeout is the default timeout for HTTP requests.
	DefaultFetchTimeout = 30 * time.Second
)

// Ensure Fetcher implements escposdoc.Fetcher at compile time.
var _ escposdoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves reference pages by name relative to a base URL.
// It does not retry.
type Fetcher struct {
	client    *http.Client
	baseURL   string
	userAgent string
	timeout   time.Duration
	limiter   *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithBaseURL sets the URL page names are resolved against.
// A trailing slash is added if missing.
func WithBaseURL(u string) Option {
	return func(f *Fetcher) {
		if !strings.HasSuffix(u, "/") {
			u += "/"
		}
		f.baseURL = u
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit limits requests to rps per second with no bursting.
// A non-positive rps disables limiting, which is the default.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		timeout:   DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// URL returns the absolute URL of the named page.
func (f *Fetcher) URL(name string) string {
	return f.baseURL + strings.TrimPrefix(name, "/")
}

// Fetch requests the named page. Failures are ETRANSPORT errors.
func (f *Fetcher) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	url := f.URL(name)

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, escposdoc.Errorf(escposdoc.ETRANSPORT, "fetch %s: %v", url, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, escposdoc.Errorf(escposdoc.ETRANSPORT, "fetch %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, escposdoc.Errorf(escposdoc.ETRANSPORT, "fetch %s: %v", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, escposdoc.Errorf(escposdoc.ETRANSPORT, "HTTP %d for %s", resp.StatusCode, url)
	}

	return resp.Body, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

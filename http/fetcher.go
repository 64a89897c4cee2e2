// Package http provides an HTTP-based implementation of stribot.Fetcher
// for the static station pages.
package http

import (
	"context"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/stribot"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements stribot.Fetcher at compile time.
var _ stribot.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page bodies using plain HTTP GET requests.
// Bodies are decoded to UTF-8 based on the declared or sniffed charset.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	limiter   *rate.Limiter
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit limits requests to rps per second with no bursting.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body of the given URL as UTF-8 text.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", stribot.Wrap(stribot.ETRANSPORT, err, "rate limit wait for %s", url)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", stribot.Wrap(stribot.EINVALID, err, "invalid request for %s", url)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", stribot.Wrap(stribot.ETRANSPORT, err, "fetch %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", stribot.Errorf(stribot.ESTATUS, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", stribot.Wrap(stribot.ETRANSPORT, err, "read body of %s", url)
	}

	// A guessed encoding only wins over bytes that aren't valid UTF-8;
	// the guess looks at the first 1024 bytes and defaults to windows-1252.
	enc, _, certain := charset.DetermineEncoding(body, resp.Header.Get("Content-Type"))
	if certain || !utf8.Valid(body) {
		body, err = enc.NewDecoder().Bytes(body)
		if err != nil {
			return "", stribot.Wrap(stribot.ETRANSPORT, err, "decode body of %s", url)
		}
	}

	return string(body), nil
}

package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/pfrederiksen/league-leaderboard/internal/config"
	"github.com/pfrederiksen/league-leaderboard/internal/sheet"
)

// MaxBodySize caps how much of an export is read. Larger bodies fail the fetch rather
// than being truncated. The league sheet is a few KiB.
const MaxBodySize = 10 << 20

// ErrFetch matches every *FetchError.
var ErrFetch = errors.New("sheet fetch failed")

// FetchError reports a failed load of the export: either the request never completed
// (Err set) or the server answered with a non-2xx status.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetching %s: unexpected status code: %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// Client fetches the sheet export.
type Client struct {
	client    *http.Client
	url       string
	format    sheet.Format
	userAgent string
	limiter   *rate.Limiter
}

// New creates a Client from sheet settings. A zero rate limit disables throttling.
func New(cfg config.SheetConfig) *Client {
	limit := rate.Limit(cfg.RateLimit)
	if cfg.RateLimit <= 0 || math.IsInf(cfg.RateLimit, 1) {
		limit = rate.Inf
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	format := cfg.Format
	if format == "" {
		format = sheet.FormatCSV
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		url:       cfg.URL,
		format:    format,
		userAgent: cfg.UserAgent,
		limiter:   rate.NewLimiter(limit, burst),
	}
}

// URL returns the export URL the client fetches.
func (c *Client) URL() string {
	return c.url
}

// Format returns the export format the client decodes.
func (c *Client) Format() sheet.Format {
	return c.format
}

// Fetch downloads the raw export body.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &FetchError{URL: c.url, Err: fmt.Errorf("waiting for rate limiter: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: fmt.Errorf("creating request: %w", err)}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: c.url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, &FetchError{URL: c.url, StatusCode: resp.StatusCode, Err: fmt.Errorf("reading body: %w", err)}
	}
	if len(body) > MaxBodySize {
		return nil, &FetchError{URL: c.url, StatusCode: resp.StatusCode, Err: fmt.Errorf("body exceeds %d bytes", MaxBodySize)}
	}

	return body, nil
}

// Records fetches the export and decodes it into records.
func (c *Client) Records(ctx context.Context) ([]sheet.Record, error) {
	body, err := c.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	records, err := sheet.Decode(c.format, body)
	if err != nil {
		return nil, fmt.Errorf("decoding %s export: %w", c.format, err)
	}
	return records, nil
}

// Package source fetches the published league sheet export over HTTP.
//
// A Client issues a GET against the configured export URL with a fixed User-Agent and
// timeout, throttled by a token-bucket limiter so page refreshes cannot hammer the
// spreadsheet host. Any transport failure or non-2xx response is reported as a
// *FetchError (matching ErrFetch) before any parsing is attempted.
package source

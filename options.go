package zeptomail

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
// Useful for tests with httptest servers or custom transports.
// A timeout set on the client applies in addition to the per-call timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL overrides the send endpoint.
// Defaults to DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u = strings.TrimSpace(u); u != "" {
			c.baseURL = u
		}
	}
}

// WithLogger sets the client logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDefaultTimeout sets the timeout used when a request does not set its own.
// Defaults to 10 seconds.
func WithDefaultTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

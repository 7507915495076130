package client

import (
	"log/slog"
	"net/http"
	"time"
)

// Option represents client option
type Option func(c *Client)

// WithTimeout sets per call timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient sets http client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBearerToken sets bearer token sent with every call
func WithBearerToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTimestampIDs derives request ids from the wall clock in milliseconds
func WithTimestampIDs() Option {
	return func(c *Client) {
		c.timestampIDs = true
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

package websms

// This file defines the functional options accepted by New. Keeping them
// in a standalone file makes every available knob discoverable at a glance.

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client timeout. It bounds the
// total time spent on a single gateway request, including connection, TLS
// handshake and reading the response. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("websms: http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. The supplied client
// keeps full responsibility for timeouts and transport settings; TLS
// certificate verification must stay enabled.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("websms: http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithEndpoint overrides the gateway endpoint, e.g. to point at a staging
// gateway or a test server. The URL must be absolute and carry no
// user-info; credentials are always taken from the constructor.
func WithEndpoint(rawURL string) Option {
	return func(c *Client) error {
		u, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("websms: parse endpoint: %w", err)
		}
		if !u.IsAbs() {
			return fmt.Errorf("websms: endpoint must be an absolute URL")
		}
		if u.User != nil {
			return fmt.Errorf("websms: endpoint must not carry credentials")
		}
		c.endpoint = u
		return nil
	}
}

// WithLogger sets the logger used for send outcomes and debug dumps.
// The default is a no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = l
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each gateway
// request/response is dumped to the logger when enabled is true. Dumps
// include credentials and message content; keep this out of production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport, logger: &c.logger}
		}
		return nil
	}
}

// WithGeneratedClientMessageIDs makes the client assign a fresh UUID as
// clientMessageId to every message that does not already carry one, so
// each send can be correlated with the gateway's status record.
func WithGeneratedClientMessageIDs() Option {
	return func(c *Client) error {
		c.generateIDs = true
		return nil
	}
}

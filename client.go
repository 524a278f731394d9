// Package websms is a client for the websms-style SMS gateway: one HTTPS
// POST per message to the JSON text-messaging endpoint, with the gateway's
// statusCode classified into an accepted or rejected result.
//
// The client performs a single best-effort attempt per call. Retries,
// delivery-status polling and batching are left to the caller.
package websms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/oggyb/websms-go/internal/wire"
)

// DefaultEndpoint is the gateway's production text-messaging endpoint.
const DefaultEndpoint = "https://api.websms.com/rest/smsmessaging/text"

const defaultTimeout = 3 * time.Second

// Sender is the caller-facing contract of the gateway client. Higher-level
// dispatch code should depend on this interface so the gateway can be
// swapped out in tests.
type Sender interface {
	// Send submits one message to the gateway.
	// A non-nil error is always a *TransportError or a request-building
	// failure; gateway rejections come back as a SendResult.
	Send(ctx context.Context, msg Message) (*SendResult, error)
}

var _ Sender = (*Client)(nil)

// Client talks to the SMS gateway. It holds no mutable state beyond the
// underlying http.Client and is safe for concurrent use.
type Client struct {
	endpoint *url.URL
	login    string
	password string

	http        *http.Client
	logger      zerolog.Logger
	generateIDs bool
}

// New constructs a Client with the given gateway credentials. Both
// credentials are required; construction fails before any network
// activity if either is empty.
func New(login, password string, opts ...Option) (*Client, error) {
	if login == "" {
		return nil, ErrMissingLogin
	}
	if password == "" {
		return nil, ErrMissingPassword
	}

	endpoint, err := url.Parse(DefaultEndpoint)
	if err != nil {
		return nil, fmt.Errorf("websms: parse default endpoint: %w", err)
	}

	c := &Client{
		endpoint: endpoint,
		login:    login,
		password: password,
		http:     &http.Client{Timeout: defaultTimeout},
		logger:   zerolog.Nop(),
	}

	// Auto-enable HTTP debug logging via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Send implements Sender by posting the message as JSON to the gateway and
// classifying the status record in the response.
//
// Transport-level faults (dial, TLS, timeout, unreadable or unparsable
// response) surface as a *TransportError and are not retried. A gateway
// rejection is not an error: it comes back as an unaccepted SendResult
// carrying the full status record.
func (c *Client) Send(ctx context.Context, msg Message) (*SendResult, error) {
	if c.generateIDs && msg.ClientMessageID == "" {
		msg.ClientMessageID = uuid.NewString()
	}

	payload := wire.BuildPayload(msg.Recipient, msg.Content, msg.optionalFields(), msg.Extra)
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("websms: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.requestURL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("websms: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept", "application/json; charset=utf-8")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		sendsTotal.WithLabelValues(outcomeFault).Inc()
		c.logger.Error().Err(err).Str("recipient", msg.Recipient).Msg("gateway request failed")
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		sendsTotal.WithLabelValues(outcomeFault).Inc()
		return nil, &TransportError{Err: fmt.Errorf("read gateway response: %w", err)}
	}

	status, err := wire.DecodeStatus(raw)
	if err != nil {
		sendsTotal.WithLabelValues(outcomeFault).Inc()
		return nil, &TransportError{RawBody: string(raw), Err: err}
	}

	sendDuration.Observe(time.Since(start).Seconds())

	if status.Accepted() {
		sendsTotal.WithLabelValues(outcomeAccepted).Inc()
		c.logger.Debug().
			Str("status_code", status.StatusCode).
			Str("transfer_id", status.TransferID).
			Msg("gateway accepted message")
		return &SendResult{Accepted: true, Status: status}, nil
	}

	sendsTotal.WithLabelValues(outcomeRejected).Inc()
	c.logger.Warn().
		Str("status_code", status.StatusCode).
		Str("status_message", status.StatusMessage).
		Msg("gateway rejected message")
	return &SendResult{Accepted: false, Status: status}, nil
}

// requestURL builds the endpoint URL with the credentials percent-encoded
// into its user-info segment, as the gateway expects.
func (c *Client) requestURL() string {
	u := *c.endpoint
	u.User = url.UserPassword(c.login, c.password)
	return u.String()
}

package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
)

// Status codes in the 2000-2099 range mean the gateway accepted the message.
var acceptedCode = regexp.MustCompile(`^20\d{2}$`)

// Status is the gateway's per-request status record. It is returned for
// accepted and rejected messages alike; all fields are gateway-defined
// and may be empty.
type Status struct {
	ClientMessageID string
	TransferID      string
	StatusMessage   string
	StatusCode      string
}

// Accepted reports whether the status code denotes acceptance (20dd).
func (s *Status) Accepted() bool {
	return acceptedCode.MatchString(s.StatusCode)
}

// statusEnvelope mirrors the gateway's response body. The statusCode field
// is decoded loosely because the gateway has been observed to send it both
// as a JSON number and as a string.
type statusEnvelope struct {
	ClientMessageID string `json:"clientMessageId"`
	TransferID      string `json:"transferId"`
	StatusMessage   string `json:"statusMessage"`
	StatusCode      any    `json:"statusCode"`
}

// DecodeStatus parses a gateway response body into a Status. A body that is
// not a valid JSON status record is a decode error; classification of the
// resulting status is the caller's concern.
func DecodeStatus(body []byte) (*Status, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var env statusEnvelope
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("decode gateway status: %w", err)
	}

	st := &Status{
		ClientMessageID: env.ClientMessageID,
		TransferID:      env.TransferID,
		StatusMessage:   env.StatusMessage,
	}
	switch v := env.StatusCode.(type) {
	case string:
		st.StatusCode = v
	case json.Number:
		st.StatusCode = v.String()
	case nil:
		// Absent status code; classified as a rejection upstream.
	default:
		return nil, fmt.Errorf("decode gateway status: unexpected statusCode type %T", v)
	}
	return st, nil
}

// Package wire builds and decodes the JSON bodies exchanged with the
// SMS gateway's text-messaging endpoint.
package wire

import "strings"

// JSON keys the gateway requires on every outgoing message.
const (
	KeyMessageContent       = "messageContent"
	KeyRecipientAddressList = "recipientAddressList"
)

// NormalizeRecipient strips a single leading "+" from a destination
// number. The gateway expects international numbers without the plus
// sign; everything else is passed through untouched.
func NormalizeRecipient(addr string) string {
	return strings.TrimPrefix(addr, "+")
}

// BuildPayload assembles the outgoing JSON object. Merge order is fixed:
// the required fields go in first, then the typed optional fields, then
// the caller's extra fields. A later write wins, so an extra field with a
// colliding key always takes precedence.
func BuildPayload(recipient, content string, optional, extra map[string]any) map[string]any {
	payload := map[string]any{
		KeyMessageContent:       content,
		KeyRecipientAddressList: []string{NormalizeRecipient(recipient)},
	}
	for k, v := range optional {
		payload[k] = v
	}
	for k, v := range extra {
		payload[k] = v
	}
	return payload
}

package websms

import "github.com/oggyb/websms-go/internal/wire"

// Status is the gateway's per-request status record.
type Status = wire.Status

// SendResult is the outcome of a single Send call once the gateway has
// answered. Accepted tells the two branches apart; Status always carries
// the full parsed record, so a rejection's statusCode and statusMessage
// are available to the caller.
type SendResult struct {
	Accepted bool
	Status   *Status
}

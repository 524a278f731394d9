package websms

import "errors"

// Construction errors. Credentials are validated in New, before any
// network activity.
var (
	ErrMissingLogin    = errors.New("websms: login must not be empty")
	ErrMissingPassword = errors.New("websms: password must not be empty")
)

// TransportError is a fatal transport-level fault: the HTTP exchange
// itself failed, or the gateway's response body could not be read or
// parsed. It is never returned for an application-level rejection, and
// the client does not retry it.
type TransportError struct {
	// RawBody holds the response content when a body was received but
	// could not be parsed.
	RawBody string
	Err     error
}

func (e *TransportError) Error() string {
	return "websms: transport fault: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsTransportError reports whether err is a transport fault.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

package websms

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog"
)

// debugTransport dumps each gateway request and response to the client's
// logger. Dumps carry the full wire traffic, credentials included, so this
// transport is only installed on explicit request.
type debugTransport struct {
	base   http.RoundTripper
	logger *zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	if dump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.logger.Debug().Str("method", req.Method).Str("url", req.URL.Redacted()).
			Str("request_dump", string(dump)).Msg("gateway request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		dt.logger.Error().Err(err).Str("url", req.URL.Redacted()).Msg("gateway request failed")
		return nil, err
	}

	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.logger.Debug().Int("status_code", resp.StatusCode).
			Str("response_dump", string(dump)).Msg("gateway response")
	}
	return resp, nil
}

// debugLoggingRequested checks whether HTTP debug logging was asked for via
// the environment: WEBSMS_DEBUG=true for targeted gateway debugging, or
// DEBUG=true as the broader development switch.
func debugLoggingRequested() bool {
	return os.Getenv("WEBSMS_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}

package lava

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps each HTTP request and response for troubleshooting
// API communication problems (malformed requests, unexpected responses,
// authentication issues).
//
// Activated by constructing the client with WithDebugLogging(true), or by
// setting LAVA_DEBUG=true (or the general DEBUG=true) in the environment.
// The dumps include the Authorization header and full bodies, so keep this
// out of production logs.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether HTTP debug logging was requested via
// the environment: LAVA_DEBUG=true for targeted client debugging, or
// DEBUG=true as the broader development flag.
func debugLoggingRequested() bool {
	return os.Getenv("LAVA_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}

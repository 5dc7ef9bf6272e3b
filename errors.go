package lava

import (
	"errors"

	"github.com/Palymer/api-lava-ru/internal/types"
)

// Public aliases so SDK consumers can import only the lava package.
//
// Every operation returns a *APIError on failure, whatever the origin; the
// Kind field distinguishes remote service errors from transport and local
// failures when callers need to.
type (
	APIError  = types.APIError
	ErrorKind = types.ErrorKind
)

const (
	ErrorKindRemote    = types.ErrorKindRemote
	ErrorKindTransport = types.ErrorKindTransport
	ErrorKindLocal     = types.ErrorKindLocal
)

// IsRemote reports whether err is an error reported by the payment service
// itself (its message is the service's "<code>: <message>" text).
func IsRemote(err error) bool { return hasKind(err, types.ErrorKindRemote) }

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool { return hasKind(err, types.ErrorKindTransport) }

// IsLocal reports whether err originated in the client: invalid parameters,
// request construction failures, or a malformed response body.
func IsLocal(err error) bool { return hasKind(err, types.ErrorKindLocal) }

func hasKind(err error, kind types.ErrorKind) bool {
	var apiErr *types.APIError
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

package types

// ErrorKind tags the origin of an APIError.
type ErrorKind string

const (
	// ErrorKindRemote marks an error reported by the payment service itself
	// (the status=="error" envelope).
	ErrorKindRemote ErrorKind = "remote"
	// ErrorKindTransport marks a network-level failure (connection refused,
	// timeout, DNS failure).
	ErrorKindTransport ErrorKind = "transport"
	// ErrorKindLocal marks everything else: invalid parameters, request
	// construction failures, malformed JSON in the response.
	ErrorKindLocal ErrorKind = "local"
)

// APIError is the single error type returned by every client operation.
// For remote errors Message is exactly "<code>: <message>" as reported by
// the service; for the other kinds it carries the underlying failure text.
type APIError struct {
	Kind    ErrorKind
	Message string
}

func (e *APIError) Error() string { return e.Message }

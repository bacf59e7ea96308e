package statsdc

import "errors"

// Errors returned by the client. Individual failures are wrapped with
// context, so test with errors.Is.
var (
	// ErrConfiguration is returned by New for an invalid option value.
	ErrConfiguration = errors.New("invalid client configuration")

	// ErrValidation is returned when a value or sample rate is outside
	// the domain of its metric kind. Nothing is buffered.
	ErrValidation = errors.New("invalid metric value")

	// ErrOversize means a single encoded line could never fit in one
	// packet. Unless the StrictOversize option is set the line is only
	// logged and dropped, and the metric call returns nil.
	ErrOversize = errors.New("metric line exceeds max buffer size")

	// ErrTransport is a socket construction or send failure. The buffer
	// is considered drained regardless; data is not retried.
	ErrTransport = errors.New("statsd transport failure")
)

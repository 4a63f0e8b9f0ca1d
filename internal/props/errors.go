package props

import "errors"

// Sentinel failure kinds for the registry. Callers distinguish them with
// errors.Is; all are unrecoverable at this layer and propagate uncaught.
var (
	// ErrUnsupportedKeyword is returned when a keyword name is not present
	// in the registry's catalog.
	ErrUnsupportedKeyword = errors.New("keyword is not supported in this container")

	// ErrNotInitialized is returned by the strict read path when a keyword
	// is supported but has no explicit property instance.
	ErrNotInitialized = errors.New("keyword is supported but not initialized")

	// ErrIndexOutOfRange is returned by positional access beyond the
	// current materialized count.
	ErrIndexOutOfRange = errors.New("property index out of range")
)

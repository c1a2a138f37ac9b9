package model

import "errors"

var (
	// ErrOperationInFlight is returned when a mutation of the same kind is
	// already pending; the second invocation performs no network call.
	ErrOperationInFlight = errors.New("operation already in progress")

	// ErrNoDeleteStaged is returned by confirm/cancel when nothing was staged.
	ErrNoDeleteStaged = errors.New("no delete staged")

	// ErrDeleteUnsupported is returned when a delete is requested for a kind
	// that has no delete endpoint (support, feedback).
	ErrDeleteUnsupported = errors.New("collection does not support delete")
)

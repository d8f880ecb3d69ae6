package timerecord

import "errors"

// Time record domain errors
var (
	ErrRecordNotFound = errors.New("time record not found")

	// ErrStoreUnavailable signals that the record store could not be
	// reached. The punch was not persisted and may be retried.
	ErrStoreUnavailable = errors.New("time record store unavailable")
)

package client

import "errors"

// Client domain errors
var (
	ErrClientNotFound = errors.New("client not found")
	ErrEmailExists    = errors.New("email already registered")
)

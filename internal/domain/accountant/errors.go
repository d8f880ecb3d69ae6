package accountant

import "errors"

// Accountant domain errors
var (
	ErrAccountantNotFound = errors.New("accountant not found")
	ErrEmailExists        = errors.New("email already registered")
)

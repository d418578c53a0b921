package domain

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidAmount rejects a spend amount that is not strictly positive,
	// is larger than MaxAmount or carries more precision than the currency
	// allows.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrValidation rejects writes that break entity invariants.
	ErrValidation = errors.New("validation failed")
	// ErrPersistence marks failures of the underlying store.
	ErrPersistence = errors.New("persistence failure")
)

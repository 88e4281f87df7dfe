package domain

import "errors"

var (
	// ErrValidation marks inputs that break a numeric invariant (negative price, footprint, ...).
	ErrValidation = errors.New("validation error")

	// ErrConfiguration marks lookup tables that do not cover a value in use.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidInput marks inputs that cannot produce a result, such as an empty catalog.
	ErrInvalidInput = errors.New("invalid input")

	ErrNotFound = errors.New("not found")
)

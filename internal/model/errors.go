package model

import "errors"

// Sentinel errors services return; handlers translate them to HTTP statuses.
// Duplicate resources report forbidden (403), matching the established API
// contract, not conflict.
var (
	ErrInvalid      = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("already registered")
	ErrInvalidToken = errors.New("invalid token")
)

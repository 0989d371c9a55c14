package domain

import "errors"

// Validation errors surface as 400s at the handler boundary.
var (
	ErrMissingFields  = errors.New("required fields are missing")
	ErrInvalidPrice   = errors.New("invalid price format")
	ErrInvalidLink    = errors.New("invalid URL format for link")
	ErrShortFullName  = errors.New("fullname must be at least 3 characters")
	ErrShortContent   = errors.New("content must be at least 10 characters")
	ErrNoUpdateFields = errors.New("no update data provided")
)

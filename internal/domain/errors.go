package domain

import "errors"

// Domain errors (no external dependencies). Handlers map these to HTTP codes;
// infrastructure wraps store failures in ErrPersistence.
var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrForbidden            = errors.New("forbidden")
	ErrDuplicateUsername    = errors.New("username already exists")
	ErrDuplicateProduct     = errors.New("product already exists")
	ErrValidation           = errors.New("invalid input")
	ErrUnknownReference     = errors.New("unknown product or hawker reference")
	ErrEmptySubmission      = errors.New("submission has no rows with movement")
	ErrNotFound             = errors.New("resource not found")
	ErrPersistence          = errors.New("persistence failure")
)

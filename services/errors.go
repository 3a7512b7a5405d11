package services

import "errors"

// Sentinel errors shared by the services. Handlers map them onto HTTP
// status codes.
var (
	ErrEmptyPrompt      = errors.New("prompt is required")
	ErrPromptTooLong    = errors.New("prompt exceeds maximum length")
	ErrQuotaExhausted   = errors.New("analysis quota exhausted")
	ErrValidation       = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrEmailTaken       = errors.New("email already exists")
	ErrInvalidLogin     = errors.New("invalid email or password")
	ErrDeadlinePassed   = errors.New("challenge deadline has passed")
	ErrAlreadySubmitted = errors.New("already submitted to this challenge")
)

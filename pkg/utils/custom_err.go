package utils

import "errors"

var (
	ErrLocationNotFound    = errors.New("location not found")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTripNotFound        = errors.New("trip not found")
	ErrRateLimited         = errors.New("rate limit exceeded")
	ErrStorageError        = errors.New("storage error")
)

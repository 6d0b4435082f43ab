package service

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidID        = errors.New("invalid id")
	ErrValidation       = errors.New("validation")
	ErrStoreUnavailable = errors.New("store unavailable")
)

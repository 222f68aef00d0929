package models

import "errors"

var (
	ErrNotFound              = errors.New("not found")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrInvalidRequest        = errors.New("invalid request")
	ErrDuplicateProduct      = errors.New("inventory already exists for product")
	ErrVersionConflict       = errors.New("inventory record was modified concurrently")
	ErrEventAlreadyProcessed = errors.New("event already processed")

	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

package auth

import "errors"

var (
	ErrInvalidPINFormat = errors.New("pin must be exactly 4 digits")
	ErrInvalidPIN       = errors.New("invalid pin")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrSessionNotFound  = errors.New("session not found")
)

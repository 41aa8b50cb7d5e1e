package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("doctor name or password is incorrect")
	ErrAccountLocked      = errors.New("account temporarily locked due to repeated login failures")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

package domain

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrPaymentFailed      = errors.New("payment session failed")
	ErrInvalidInput       = errors.New("invalid input")
)

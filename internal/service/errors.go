package service

import "errors"

var (
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrInvalidCode   = errors.New("invalid code format")
	ErrNegativeValue = errors.New("values cannot be negative")
	ErrValueTooLarge = errors.New("value is too large")

	// ErrInvalidCredentials covers wrong, expired, used and unknown codes alike.
	ErrInvalidCredentials = errors.New("invalid or expired code")

	ErrUserNotFound   = errors.New("user not found")
	ErrDeliveryFailed = errors.New("code delivery failed")
)

package services

import "errors"

// Sentinel errors surfaced at the controller boundary. Everything else is a
// persistence failure and is passed through verbatim.
var (
	ErrCodeNotFound  = errors.New("booking code not found")
	ErrCodeExpired   = errors.New("booking code expired")
	ErrStayNotFound  = errors.New("stay not found")
	ErrGuestNotFound = errors.New("guest not found")
	ErrStayHasCode   = errors.New("stay already has a booking code")
)

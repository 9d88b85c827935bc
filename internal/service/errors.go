package service

import "errors"

// Handlers map these with errors.Is; the wrapped message carries the detail.
var (
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUpstreamUnavailable = errors.New("payment gateway unavailable")
	ErrMalformedPayload    = errors.New("malformed payload")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternal            = errors.New("internal error")
)

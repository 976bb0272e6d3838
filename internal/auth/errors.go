package auth

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidSession = errors.New("invalid session")
	ErrExpiredSession = errors.New("session expired")
	ErrUnauthorized   = errors.New("login required")
	ErrForbidden      = errors.New("operator role required")
	ErrDevLogin       = errors.New("dev login disabled")
	ErrUnknownAction  = errors.New("unknown auth action")
	ErrInvalidCSRF    = errors.New("csrf token mismatch")
)

// MapHTTPStatus maps auth errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidSession),
		errors.Is(err, ErrExpiredSession),
		errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrInvalidCSRF):
		return http.StatusForbidden
	case errors.Is(err, ErrDevLogin), errors.Is(err, ErrUnknownAction):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

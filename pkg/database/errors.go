package database

import "errors"

var (
	// ErrNotReady is returned when the connection is requested before startup completes.
	ErrNotReady = errors.New("database not ready")

	// ErrDisabled is returned by writes when no database is configured.
	ErrDisabled = errors.New("database not configured")
)

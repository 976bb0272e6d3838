// Package handlers provides HTTP response utilities for JSON APIs.
// These stateless functions standardize response formatting across handlers.
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// Failure is the error envelope returned by every content endpoint.
// Both keys are always present.
type Failure struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ErrorBody is the {"error": "..."} body written by RespondError.
type ErrorBody struct {
	Error string `json:"error"`
}

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs the error and writes a JSON error response.
// The response body contains {"error": "<error message>"}.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("handler error", "error", err, "status", status)
	RespondJSON(w, status, ErrorBody{Error: err.Error()})
}

// RespondFailure logs and writes a {"error": code, "message": message} response.
func RespondFailure(w http.ResponseWriter, logger *slog.Logger, status int, code, message string) {
	logger.Error("handler failure", "code", code, "message", message, "status", status)
	RespondJSON(w, status, Failure{Error: code, Message: message})
}

// PanicMessage renders a recovered panic value. Errors yield their text and
// any other value its default string form.
func PanicMessage(v any) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(v)
}

// Guard runs fn and converts a returned error or a panic into a 500 failure
// response carrying code. On success the value is written with status 200.
func Guard[T any](w http.ResponseWriter, logger *slog.Logger, code string, fn func() (T, error)) {
	value, msg, ok := call(fn)
	if !ok {
		RespondFailure(w, logger, http.StatusInternalServerError, code, msg)
		return
	}
	RespondJSON(w, http.StatusOK, value)
}

func call[T any](fn func() (T, error)) (value T, msg string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			msg = PanicMessage(r)
			ok = false
		}
	}()

	v, err := fn()
	if err != nil {
		return value, err.Error(), false
	}
	return v, "", true
}

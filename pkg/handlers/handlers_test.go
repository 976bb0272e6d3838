package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/design-lab/pkg/handlers"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRespondJSON(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		data     any
		wantBody string
	}{
		{"object", http.StatusOK, map[string]string{"text": "Playbook"}, `{"text":"Playbook"}`},
		{"created", http.StatusCreated, map[string]bool{"ok": true}, `{"ok":true}`},
		{"empty slice", http.StatusOK, []string{}, `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handlers.RespondJSON(w, tt.status, tt.data)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if got := strings.TrimSpace(w.Body.String()); got != tt.wantBody {
				t.Errorf("body = %s, want %s", got, tt.wantBody)
			}
		})
	}
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()
	handlers.RespondError(w, discard, http.StatusNotFound, errors.New("post not found"))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}

	var body map[string]string
	json.NewDecoder(w.Body).Decode(&body)

	if body["error"] != "post not found" {
		t.Errorf("error = %q, want %q", body["error"], "post not found")
	}
	if _, ok := body["message"]; ok {
		t.Error("message should be omitted")
	}
}

func TestRespondFailure(t *testing.T) {
	w := httptest.NewRecorder()
	handlers.RespondFailure(w, discard, http.StatusForbidden, "Forbidden", "operator role required")

	var body handlers.Failure
	json.NewDecoder(w.Body).Decode(&body)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
	if body.Error != "Forbidden" || body.Message != "operator role required" {
		t.Errorf("body = %+v", body)
	}
}

func TestRespondFailure_EmptyMessage(t *testing.T) {
	w := httptest.NewRecorder()
	handlers.RespondFailure(w, discard, http.StatusInternalServerError, "NoticesFetchFailed", "")

	if got := strings.TrimSpace(w.Body.String()); got != `{"error":"NoticesFetchFailed","message":""}` {
		t.Errorf("body = %s", got)
	}
}

type customErr struct{}

func (customErr) Error() string { return "custom failure" }

func TestPanicMessage(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "x", "x"},
		{"error", errors.New("boom"), "boom"},
		{"custom error", customErr{}, "custom failure"},
		{"int", 42, "42"},
		{"nil slice", []int(nil), "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handlers.PanicMessage(tt.value); got != tt.want {
				t.Errorf("PanicMessage(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestGuard(t *testing.T) {
	tests := []struct {
		name       string
		fn         func() ([]string, error)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			fn:         func() ([]string, error) { return []string{"a"}, nil },
			wantStatus: http.StatusOK,
			wantBody:   `["a"]`,
		},
		{
			name:       "error",
			fn:         func() ([]string, error) { return nil, errors.New("boom") },
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"MarqueeFetchFailed","message":"boom"}`,
		},
		{
			name:       "panic",
			fn:         func() ([]string, error) { panic("x") },
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"MarqueeFetchFailed","message":"x"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handlers.Guard(w, discard, "MarqueeFetchFailed", tt.fn)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := strings.TrimSpace(w.Body.String()); got != tt.wantBody {
				t.Errorf("body = %s, want %s", got, tt.wantBody)
			}
		})
	}
}

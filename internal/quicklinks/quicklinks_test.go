package quicklinks_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/design-lab/internal/quicklinks"
)

type stubSystem struct {
	links []quicklinks.QuickLink
	err   error
}

func (s stubSystem) List(context.Context) ([]quicklinks.QuickLink, error) {
	return s.links, s.err
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRepository_Catalog(t *testing.T) {
	links, err := quicklinks.New(nil, discard()).List(t.Context())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(links) == 0 {
		t.Fatal("List() returned no links")
	}
}

func TestHandler_List(t *testing.T) {
	tests := []struct {
		name       string
		sys        stubSystem
		wantStatus int
		wantBody   string
	}{
		{"links", stubSystem{links: []quicklinks.QuickLink{{Text: "가이드", Href: "#"}}}, http.StatusOK, `[{"text":"가이드","href":"#"}]`},
		{"empty", stubSystem{links: []quicklinks.QuickLink{}}, http.StatusOK, `[]`},
		{"failure", stubSystem{err: errors.New("refused")}, http.StatusInternalServerError, `{"error":"QuickLinksFetchFailed","message":"refused"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			quicklinks.NewHandler(tt.sys, discard()).List(rec, httptest.NewRequest(http.MethodGet, "/data/quick-links", nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tt.wantBody {
				t.Errorf("body = %s, want %s", got, tt.wantBody)
			}
		})
	}
}

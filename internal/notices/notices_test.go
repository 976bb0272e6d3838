package notices_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/design-lab/internal/notices"
	"github.com/JaimeStill/design-lab/pkg/database"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRepository_Catalog(t *testing.T) {
	sys := notices.New(nil, discard())

	items, err := sys.List(t.Context())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) == 0 {
		t.Fatal("List() returned no notices")
	}
	for _, n := range items {
		if n.ID != "" {
			t.Errorf("public notice carries id %q", n.ID)
		}
	}

	admin, err := sys.Admin(t.Context())
	if err != nil {
		t.Fatalf("Admin() error = %v", err)
	}
	if admin == nil || len(admin) != 0 {
		t.Errorf("Admin() = %v, want empty slice without a database", admin)
	}
}

func TestRepository_WritesRequireDatabase(t *testing.T) {
	sys := notices.New(nil, discard())

	if _, err := sys.Create(t.Context(), notices.CreateCommand{Title: "t"}); !errors.Is(err, database.ErrDisabled) {
		t.Errorf("Create() error = %v, want ErrDisabled", err)
	}
	if err := sys.Delete(t.Context(), "x"); !errors.Is(err, database.ErrDisabled) {
		t.Errorf("Delete() error = %v, want ErrDisabled", err)
	}
}

func TestCreateCommand_Normalize(t *testing.T) {
	tests := []struct {
		name    string
		cmd     notices.CreateCommand
		want    notices.CreateCommand
		wantErr error
	}{
		{
			name: "defaults",
			cmd:  notices.CreateCommand{Title: " 점검 안내 "},
			want: notices.CreateCommand{Title: "점검 안내", Badge: "공지", BadgeColor: "bg-gray-700"},
		},
		{
			name: "explicit badge",
			cmd:  notices.CreateCommand{Title: "t", Badge: "필독", BadgeColor: "bg-red-500"},
			want: notices.CreateCommand{Title: "t", Badge: "필독", BadgeColor: "bg-red-500"},
		},
		{
			name:    "missing title",
			cmd:     notices.CreateCommand{Title: "  "},
			wantErr: notices.ErrTitleMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Normalize()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Normalize() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && tt.cmd != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", tt.cmd, tt.want)
			}
		})
	}
}

type stubSystem struct {
	notices.System
	items []notices.Notice
	err   error
}

func (s stubSystem) List(context.Context) ([]notices.Notice, error) {
	return s.items, s.err
}

func TestHandler_List(t *testing.T) {
	tests := []struct {
		name       string
		sys        stubSystem
		wantStatus int
		wantBody   string
	}{
		{
			name:       "items",
			sys:        stubSystem{items: []notices.Notice{{Title: "a", Date: "2024.02.09", Badge: "필독", BadgeColor: "bg-x"}}},
			wantStatus: http.StatusOK,
			wantBody:   `[{"title":"a","date":"2024.02.09","badge":"필독","badgeColor":"bg-x"}]`,
		},
		{
			name:       "empty",
			sys:        stubSystem{items: []notices.Notice{}},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "failure",
			sys:        stubSystem{err: errors.New("timeout")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"NoticesFetchFailed","message":"timeout"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := notices.NewHandler(tt.sys, discard())
			rec := httptest.NewRecorder()
			h.List(rec, httptest.NewRequest(http.MethodGet, "/data/notices", nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var got, want any
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			json.Unmarshal([]byte(tt.wantBody), &want)
			gotJSON, _ := json.Marshal(got)
			wantJSON, _ := json.Marshal(want)
			if string(gotJSON) != string(wantJSON) {
				t.Errorf("body = %s, want %s", gotJSON, wantJSON)
			}
		})
	}
}

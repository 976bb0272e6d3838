package home_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/design-lab/internal/auth"
	"github.com/JaimeStill/design-lab/internal/home"
	"github.com/JaimeStill/design-lab/internal/notices"
	"github.com/JaimeStill/design-lab/pkg/database"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeHome struct {
	persistent  bool
	bannersErr  error
	activeCalls []bool
	deleted     []string
}

func (f *fakeHome) Persistent() bool { return f.persistent }

func (f *fakeHome) Banners(_ context.Context, activeOnly bool) ([]home.Banner, error) {
	f.activeCalls = append(f.activeCalls, activeOnly)
	if f.bannersErr != nil {
		return nil, f.bannersErr
	}
	return []home.Banner{{ID: "b1", Title: "hero", IsActive: true}}, nil
}

func (f *fakeHome) Banner(_ context.Context, id string) (*home.Banner, error) {
	if id != "b1" {
		return nil, home.ErrNotFound
	}
	return &home.Banner{ID: "b1", Title: "hero", IsActive: true}, nil
}

func (f *fakeHome) Guides(context.Context, bool) ([]home.Guide, error) {
	return []home.Guide{}, nil
}

func (f *fakeHome) CreateBanner(_ context.Context, cmd home.BannerCommand) (*home.Banner, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return nil, home.ErrTitleMissing
	}
	return &home.Banner{ID: "new", Title: cmd.Title, Href: strings.TrimSpace(cmd.Href), IsActive: true}, nil
}

func (f *fakeHome) CreateGuide(_ context.Context, cmd home.GuideCommand) (*home.Guide, error) {
	if cmd.Description == "" {
		return nil, home.ErrDescriptionMissing
	}
	return &home.Guide{ID: "g", Title: cmd.Title, Description: cmd.Description, IsActive: true}, nil
}

func (f *fakeHome) DeleteBanner(_ context.Context, id string) error {
	f.deleted = append(f.deleted, "banner:"+id)
	return nil
}

func (f *fakeHome) DeleteGuide(_ context.Context, id string) error {
	if id == "missing" {
		return home.ErrNotFound
	}
	f.deleted = append(f.deleted, "guide:"+id)
	return nil
}

type fakeNotices struct {
	notices.System
}

func (fakeNotices) List(context.Context) ([]notices.Notice, error) {
	return []notices.Notice{{Title: "n", Date: "2024.02.09", Badge: "공지", BadgeColor: "bg-gray-700"}}, nil
}

func (fakeNotices) Admin(context.Context) ([]notices.Notice, error) {
	return []notices.Notice{{ID: "n1", Title: "n", Date: "2024.02.09", Badge: "공지", BadgeColor: "bg-gray-700"}}, nil
}

func (fakeNotices) Create(_ context.Context, cmd notices.CreateCommand) (*notices.Notice, error) {
	if err := cmd.Normalize(); err != nil {
		return nil, err
	}
	return &notices.Notice{ID: "n2", Title: cmd.Title, Badge: cmd.Badge, BadgeColor: cmd.BadgeColor}, nil
}

func (fakeNotices) Delete(context.Context, string) error { return nil }

type recordingAuditor struct{ actions []string }

func (a *recordingAuditor) Audit(_ context.Context, _ auth.User, action, _ string, _ map[string]any) {
	a.actions = append(a.actions, action)
}

var operator = auth.User{ID: "op", Email: auth.FixedOperatorEmail}

func newServer(sys home.System, audit home.Auditor) http.Handler {
	policy := auth.NewPolicy(auth.FixedOperatorEmail, nil, nil)
	h := home.NewHandler(sys, fakeNotices{}, policy, audit, discard(), 1024)

	mux := http.NewServeMux()
	for _, child := range h.Routes().Children {
		for _, r := range child.Routes {
			mux.HandleFunc(r.Method+" "+child.Prefix+r.Pattern, r.Handler)
		}
	}
	return mux
}

func TestRepository_NoDatabase(t *testing.T) {
	sys := home.New(nil, discard())

	banners, err := sys.Banners(t.Context(), true)
	if err != nil || banners == nil || len(banners) != 0 {
		t.Errorf("Banners() = %v, %v; want empty slice", banners, err)
	}
	guides, err := sys.Guides(t.Context(), false)
	if err != nil || guides == nil || len(guides) != 0 {
		t.Errorf("Guides() = %v, %v; want empty slice", guides, err)
	}
	if _, err := sys.Banner(t.Context(), "x"); !errors.Is(err, home.ErrNotFound) {
		t.Errorf("Banner() error = %v, want ErrNotFound", err)
	}
	if _, err := sys.CreateBanner(t.Context(), home.BannerCommand{Title: "t"}); !errors.Is(err, database.ErrDisabled) {
		t.Errorf("CreateBanner() error = %v, want ErrDisabled", err)
	}
	if err := sys.DeleteGuide(t.Context(), "x"); !errors.Is(err, database.ErrDisabled) {
		t.Errorf("DeleteGuide() error = %v, want ErrDisabled", err)
	}
}

func TestHandler_Content(t *testing.T) {
	sys := &fakeHome{}
	srv := newServer(sys, &recordingAuditor{})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/data/home-content", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var c home.Content
	if err := json.NewDecoder(rec.Body).Decode(&c); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(c.Banners) != 1 || len(c.Notices) != 1 || c.PlaydayGuides == nil {
		t.Errorf("content = %+v", c)
	}
	if c.Notices[0].ID != "" {
		t.Error("public notices carry ids")
	}
	if len(sys.activeCalls) != 1 || !sys.activeCalls[0] {
		t.Errorf("Banners activeOnly calls = %v, want [true]", sys.activeCalls)
	}
}

func TestHandler_ContentFailure(t *testing.T) {
	srv := newServer(&fakeHome{bannersErr: errors.New("boom")}, &recordingAuditor{})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/data/home-content", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error":"HomeContentFetchFailed"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHandler_Banner(t *testing.T) {
	srv := newServer(&fakeHome{}, &recordingAuditor{})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/data/banner/b1", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/data/banner/zzz", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"NotFound"}` {
		t.Errorf("body = %s", got)
	}
}

func TestHandler_AdminContent(t *testing.T) {
	tests := []struct {
		name       string
		persistent bool
		user       *auth.User
		wantStatus int
	}{
		{"no database", false, &operator, http.StatusBadRequest},
		{"anonymous", true, nil, http.StatusUnauthorized},
		{"employee", true, &auth.User{ID: "EMP001"}, http.StatusForbidden},
		{"operator", true, &operator, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := &fakeHome{persistent: tt.persistent}
			srv := newServer(sys, &recordingAuditor{})

			req := httptest.NewRequest(http.MethodGet, "/admin/home-content", nil)
			if tt.user != nil {
				req = req.WithContext(auth.WithUser(req.Context(), *tt.user))
			}
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if !strings.Contains(rec.Body.String(), `"id":"n1"`) {
					t.Errorf("admin notices missing ids: %s", rec.Body.String())
				}
				if len(sys.activeCalls) != 1 || sys.activeCalls[0] {
					t.Errorf("Banners activeOnly calls = %v, want [false]", sys.activeCalls)
				}
			}
		})
	}
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"banner", `{"contentType":"banner","title":"hero","href":"  "}`, http.StatusCreated, `"ok":true`},
		{"banner without title", `{"contentType":"banner"}`, http.StatusBadRequest, `"error":"BadRequest"`},
		{"notice defaults", `{"contentType":"notice","title":"점검"}`, http.StatusCreated, `"badgeColor":"bg-gray-700"`},
		{"guide without description", `{"contentType":"playday-guide","title":"t"}`, http.StatusBadRequest, `"error":"BadRequest"`},
		{"unknown type", `{"contentType":"poster","title":"t"}`, http.StatusBadRequest, `"error":"BadRequest"`},
		{"malformed", `{`, http.StatusBadRequest, `"error":"BadRequest"`},
		{"oversized", `{"contentType":"banner","title":"hero","description":"` + strings.Repeat("x", 2048) + `"}`, http.StatusBadRequest, `"error":"BadRequest"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(&fakeHome{persistent: true}, &recordingAuditor{})

			req := httptest.NewRequest(http.MethodPost, "/admin/home-content", bytes.NewBufferString(tt.body))
			req = req.WithContext(auth.WithUser(req.Context(), operator))
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %s, want it to contain %s", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHandler_Delete(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantAudit  bool
	}{
		{"banner", `{"contentType":"banner","id":"b1"}`, http.StatusOK, true},
		{"guide missing", `{"contentType":"playday-guide","id":"missing"}`, http.StatusNotFound, false},
		{"no id", `{"contentType":"notice"}`, http.StatusBadRequest, false},
		{"unknown type", `{"contentType":"poster","id":"x"}`, http.StatusBadRequest, false},
		{"oversized", `{"contentType":"banner","id":"` + strings.Repeat("b", 2048) + `"}`, http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			audit := &recordingAuditor{}
			srv := newServer(&fakeHome{persistent: true}, audit)

			req := httptest.NewRequest(http.MethodDelete, "/admin/home-content", bytes.NewBufferString(tt.body))
			req = req.WithContext(auth.WithUser(req.Context(), operator))
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if got := len(audit.actions) == 1 && audit.actions[0] == "content_delete"; got != tt.wantAudit {
				t.Errorf("audit = %v, want content_delete: %v", audit.actions, tt.wantAudit)
			}
		})
	}
}

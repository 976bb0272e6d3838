package gallery

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/design-lab/internal/auth"
	"github.com/JaimeStill/design-lab/pkg/handlers"
	"github.com/JaimeStill/design-lab/pkg/routes"
)

// Auditor records moderation events.
type Auditor interface {
	Audit(ctx context.Context, u auth.User, action, path string, metadata map[string]any)
}

type Handler struct {
	sys         System
	policy      *auth.Policy
	audit       Auditor
	logger      *slog.Logger
	maxPostSize int64
}

func NewHandler(sys System, policy *auth.Policy, audit Auditor, logger *slog.Logger, maxPostSize int64) *Handler {
	return &Handler{
		sys:         sys,
		policy:      policy,
		audit:       audit,
		logger:      logger,
		maxPostSize: maxPostSize,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Description: "PlayDay, Playbook and ACE community galleries",
		Children: []routes.Group{
			{
				Prefix: "/data",
				Tags:   []string{"Gallery"},
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/activity", Handler: h.Activity, OpenAPI: Spec.Activity},
					{Method: "GET", Pattern: "/marquee", Handler: h.Marquee, OpenAPI: Spec.Marquee},
					{Method: "GET", Pattern: "/playday", Handler: h.Playday, OpenAPI: Spec.Playday},
					{Method: "GET", Pattern: "/playbook", Handler: h.Playbook, OpenAPI: Spec.Playbook},
					{Method: "POST", Pattern: "/posts", Handler: h.Create, OpenAPI: Spec.Create},
					{Method: "DELETE", Pattern: "/posts/{id}", Handler: h.Delete, OpenAPI: Spec.Delete},
				},
			},
			{
				Prefix: "/admin",
				Tags:   []string{"Admin"},
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/content", Handler: h.AdminContent, OpenAPI: Spec.AdminContent},
				},
			},
		},
		Schemas: Spec.Schemas(),
	}
}

func (h *Handler) Activity(w http.ResponseWriter, r *http.Request) {
	handlers.Guard(w, h.logger, "ActivityFetchFailed", func() ([]Item, error) {
		return h.sys.Activity(r.Context())
	})
}

func (h *Handler) Marquee(w http.ResponseWriter, r *http.Request) {
	handlers.Guard(w, h.logger, "MarqueeFetchFailed", func() (*Marquee, error) {
		return h.sys.Marquee(r.Context())
	})
}

func (h *Handler) Playday(w http.ResponseWriter, r *http.Request) {
	handlers.Guard(w, h.logger, "PlaydayFetchFailed", func() ([]Item, error) {
		return h.sys.Playday(r.Context())
	})
}

func (h *Handler) Playbook(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	if category == PlaybookAll {
		handlers.Guard(w, h.logger, "PlaybookFetchFailed", func() (map[PlaybookCategory][]Item, error) {
			return h.sys.PlaybookAll(r.Context())
		})
		return
	}

	handlers.Guard(w, h.logger, "PlaybookFetchFailed", func() ([]Item, error) {
		return h.sys.Playbook(r.Context(), ParsePlaybookCategory(category))
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.sys.Persistent() {
		handlers.RespondFailure(w, h.logger, http.StatusBadRequest, "DBNotConfigured", "DB not configured")
		return
	}

	var cmd CreateCommand
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxPostSize)).Decode(&cmd); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handlers.RespondFailure(w, h.logger, http.StatusRequestEntityTooLarge, "PayloadTooLarge", err.Error())
			return
		}
		handlers.RespondFailure(w, h.logger, http.StatusBadRequest, "BadRequest", err.Error())
		return
	}

	if err := cmd.Validate(); err != nil {
		handlers.RespondFailure(w, h.logger, http.StatusUnprocessableEntity, "ValidationFailed", err.Error())
		return
	}

	u, ok := auth.RequireUser(w, r, h.logger)
	if !ok {
		return
	}

	section := cmd.ResolveSection()
	role, writable := section.WriteRole()
	if !writable || !h.policy.HasRole(u, role) {
		handlers.RespondFailure(w, h.logger, http.StatusForbidden, "Forbidden", section.DeniedMessage())
		return
	}

	item, err := h.sys.Create(r.Context(), section, cmd, u)
	if err != nil {
		status := MapHTTPStatus(err)
		code := "CreateFailed"
		if status == http.StatusBadRequest {
			code = "DBNotConfigured"
		}
		handlers.RespondFailure(w, h.logger, status, code, err.Error())
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, item)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.sys.Persistent() {
		handlers.RespondFailure(w, h.logger, http.StatusBadRequest, "DBNotConfigured", "DB not configured")
		return
	}

	u, ok := auth.RequireUser(w, r, h.logger)
	if !ok {
		return
	}

	item, err := h.sys.Find(r.Context(), r.PathValue("id"))
	if err != nil {
		status := MapHTTPStatus(err)
		code := "DeleteFailed"
		if status == http.StatusNotFound {
			code = "NotFound"
		}
		handlers.RespondFailure(w, h.logger, status, code, err.Error())
		return
	}

	if !u.Matches(item.Author) && !h.policy.HasRole(u, auth.RoleOperator) {
		handlers.RespondFailure(w, h.logger, http.StatusForbidden, "Forbidden", "삭제 권한이 없습니다.")
		return
	}

	if err := h.sys.Delete(r.Context(), item.ID); err != nil {
		handlers.RespondFailure(w, h.logger, MapHTTPStatus(err), "DeleteFailed", err.Error())
		return
	}

	h.audit.Audit(r.Context(), u, "post_delete", r.URL.Path, map[string]any{
		"id":      item.ID,
		"title":   item.Title,
		"section": string(item.Section),
		"author":  item.Author,
	})

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) AdminContent(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.RequireOperator(w, r, h.policy, h.logger); !ok {
		return
	}

	handlers.Guard(w, h.logger, "AdminContentFetchFailed", func() ([]AdminItem, error) {
		return h.sys.AdminContent(r.Context())
	})
}

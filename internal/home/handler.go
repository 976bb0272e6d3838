package home

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/design-lab/internal/auth"
	"github.com/JaimeStill/design-lab/internal/notices"
	"github.com/JaimeStill/design-lab/pkg/handlers"
	"github.com/JaimeStill/design-lab/pkg/routes"
)

// Auditor records moderation events.
type Auditor interface {
	Audit(ctx context.Context, u auth.User, action, path string, metadata map[string]any)
}

// Created is the response of a successful create.
type Created struct {
	OK   bool `json:"ok"`
	Item any  `json:"item"`
}

type Handler struct {
	sys         System
	notices     notices.System
	policy      *auth.Policy
	audit       Auditor
	logger      *slog.Logger
	maxBodySize int64
}

func NewHandler(sys System, ns notices.System, policy *auth.Policy, audit Auditor, logger *slog.Logger, maxBodySize int64) *Handler {
	return &Handler{
		sys:         sys,
		notices:     ns,
		policy:      policy,
		audit:       audit,
		logger:      logger,
		maxBodySize: maxBodySize,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Description: "Home page banners, notices and PlayDay guides",
		Children: []routes.Group{
			{
				Prefix: "/data",
				Tags:   []string{"Home"},
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/home-content", Handler: h.Content, OpenAPI: Spec.Content},
					{Method: "GET", Pattern: "/banner/{id}", Handler: h.Banner, OpenAPI: Spec.Banner},
				},
			},
			{
				Prefix: "/admin",
				Tags:   []string{"Admin"},
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/home-content", Handler: h.AdminContent, OpenAPI: Spec.AdminContent},
					{Method: "POST", Pattern: "/home-content", Handler: h.Create, OpenAPI: Spec.Create},
					{Method: "DELETE", Pattern: "/home-content", Handler: h.Delete, OpenAPI: Spec.Delete},
				},
			},
		},
		Schemas: Spec.Schemas(),
	}
}

// Content returns active banners, notices and active guides.
func (h *Handler) Content(w http.ResponseWriter, r *http.Request) {
	handlers.Guard(w, h.logger, "HomeContentFetchFailed", func() (*Content, error) {
		return h.content(r.Context(), true)
	})
}

func (h *Handler) Banner(w http.ResponseWriter, r *http.Request) {
	b, err := h.sys.Banner(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			handlers.RespondJSON(w, http.StatusNotFound, handlers.ErrorBody{Error: "NotFound"})
			return
		}
		handlers.RespondFailure(w, h.logger, http.StatusInternalServerError, "FetchFailed", err.Error())
		return
	}
	handlers.RespondJSON(w, http.StatusOK, b)
}

// AdminContent returns every banner, notice and guide including inactive ones.
func (h *Handler) AdminContent(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatabase(w) {
		return
	}
	if _, ok := auth.RequireOperator(w, r, h.policy, h.logger); !ok {
		return
	}

	handlers.Guard(w, h.logger, "HomeContentFetchFailed", func() (*Content, error) {
		return h.content(r.Context(), false)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatabase(w) {
		return
	}
	if _, ok := auth.RequireOperator(w, r, h.policy, h.logger); !ok {
		return
	}

	var req ContentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodySize)).Decode(&req); err != nil {
		handlers.RespondFailure(w, h.logger, http.StatusBadRequest, "BadRequest", err.Error())
		return
	}

	item, err := h.create(r.Context(), req)
	if err != nil {
		if IsValidation(err) {
			handlers.RespondFailure(w, h.logger, http.StatusBadRequest, "BadRequest", err.Error())
			return
		}
		handlers.RespondFailure(w, h.logger, http.StatusInternalServerError, "CreateFailed", err.Error())
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, Created{OK: true, Item: item})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatabase(w) {
		return
	}
	u, ok := auth.RequireOperator(w, r, h.policy, h.logger)
	if !ok {
		return
	}

	var req ContentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodySize)).Decode(&req); err != nil {
		handlers.RespondFailure(w, h.logger, http.StatusBadRequest, "BadRequest", err.Error())
		return
	}
	if strings.TrimSpace(req.ID) == "" {
		handlers.RespondFailure(w, h.logger, http.StatusBadRequest, "BadRequest", "id is required")
		return
	}

	var err error
	switch req.ContentType {
	case ContentBanner:
		err = h.sys.DeleteBanner(r.Context(), req.ID)
	case ContentNotice:
		err = h.notices.Delete(r.Context(), req.ID)
	case ContentGuide:
		err = h.sys.DeleteGuide(r.Context(), req.ID)
	default:
		handlers.RespondFailure(w, h.logger, http.StatusBadRequest, "BadRequest", ErrContentType.Error())
		return
	}

	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, notices.ErrNotFound) {
			handlers.RespondFailure(w, h.logger, http.StatusNotFound, "NotFound", err.Error())
			return
		}
		handlers.RespondFailure(w, h.logger, http.StatusInternalServerError, "DeleteFailed", err.Error())
		return
	}

	h.audit.Audit(r.Context(), u, "content_delete", r.URL.Path, map[string]any{
		"id":          req.ID,
		"contentType": string(req.ContentType),
	})

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) create(ctx context.Context, req ContentRequest) (any, error) {
	switch req.ContentType {
	case ContentBanner:
		return h.sys.CreateBanner(ctx, BannerCommand{
			Title:       req.Title,
			Description: req.Description,
			Content:     req.Content,
			Href:        req.Href,
		})
	case ContentNotice:
		return h.notices.Create(ctx, notices.CreateCommand{
			Title:      req.Title,
			Badge:      req.Badge,
			BadgeColor: req.BadgeColor,
		})
	case ContentGuide:
		return h.sys.CreateGuide(ctx, GuideCommand{
			Title:       req.Title,
			Description: req.Description,
		})
	default:
		return nil, ErrContentType
	}
}

func (h *Handler) content(ctx context.Context, public bool) (*Content, error) {
	var c Content
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		c.Banners, err = h.sys.Banners(gctx, public)
		return wrap("banners", err)
	})
	g.Go(func() (err error) {
		if public {
			c.Notices, err = h.notices.List(gctx)
		} else {
			c.Notices, err = h.notices.Admin(gctx)
		}
		return wrap("notices", err)
	})
	g.Go(func() (err error) {
		c.PlaydayGuides, err = h.sys.Guides(gctx, public)
		return wrap("playday guides", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (h *Handler) requireDatabase(w http.ResponseWriter) bool {
	if h.sys.Persistent() {
		return true
	}
	handlers.RespondFailure(w, h.logger, http.StatusBadRequest, "DBNotConfigured", "home content management requires a database")
	return false
}

func wrap(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", what, err)
}

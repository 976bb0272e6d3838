package auth

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/design-lab/pkg/handlers"
	"github.com/JaimeStill/design-lab/pkg/routes"
)

const (
	defaultDevUser = "EMP001"
	defaultNext    = "/playground"
)

// RolesResponse lists the roles held by the session user.
type RolesResponse struct {
	Roles []Role `json:"roles"`
}

type Handler struct {
	sys      System
	provider Provider
	logger   *slog.Logger
}

func NewHandler(sys System, provider Provider, logger *slog.Logger) *Handler {
	return &Handler{
		sys:      sys,
		provider: provider,
		logger:   logger,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/auth",
		Tags:        []string{"Auth"},
		Description: "Session cookies, roles and identity provider callbacks",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/logout", Handler: h.Logout, OpenAPI: Spec.Logout},
			{Method: "GET", Pattern: "/login", Handler: h.Login, OpenAPI: Spec.Login},
			{Method: "GET", Pattern: "/roles", Handler: h.Roles, OpenAPI: Spec.Roles},
			{Method: "GET", Pattern: "", Handler: h.Provider},
			{Method: "POST", Pattern: "", Handler: h.Provider},
			{Method: "GET", Pattern: "/{nextauth...}", Handler: h.Provider, OpenAPI: Spec.ProviderGet},
			{Method: "POST", Pattern: "/{nextauth...}", Handler: h.Provider, OpenAPI: Spec.ProviderPost},
		},
		Schemas: Spec.Schemas(),
	}
}

// Logout clears the session cookie and redirects to the site root.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sys.ClearCookie(w)
	http.Redirect(w, r, h.sys.Origin(r)+"/", http.StatusFound)
}

// Login signs in a development user without an identity provider.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.sys.DevLogin() {
		handlers.RespondError(w, h.logger, http.StatusNotFound, ErrDevLogin)
		return
	}

	q := r.URL.Query()
	id := strings.TrimSpace(q.Get("user"))
	if id == "" {
		id = defaultDevUser
	}

	u := DevUser(id)
	if err := h.sys.SetCookie(w, u); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	h.logger.Info("dev login", "user", u.ID)
	http.Redirect(w, r, h.sys.Origin(r)+SafeRedirect(q.Get("next"), defaultNext), http.StatusFound)
}

// Roles returns the roles of the session user, or none when anonymous.
func (h *Handler) Roles(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFrom(r.Context())
	if !ok {
		handlers.RespondJSON(w, http.StatusOK, RolesResponse{Roles: []Role{}})
		return
	}
	handlers.RespondJSON(w, http.StatusOK, RolesResponse{Roles: h.sys.Policy().Roles(u)})
}

// Provider delegates to the identity provider. A panic is answered with
// 500 and {"error": "<message>"}.
func (h *Handler) Provider(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			handlers.RespondError(w, h.logger, http.StatusInternalServerError, fmt.Errorf("%s", handlers.PanicMessage(rec)))
		}
	}()
	h.provider.ServeHTTP(w, r)
}

// DevUser builds the session user for a development login id.
func DevUser(id string) User {
	return User{
		ID:    id,
		Email: strings.ToLower(id) + "@company.com",
		Name:  "사용자 " + id,
	}
}

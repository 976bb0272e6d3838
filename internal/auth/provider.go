package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/design-lab/pkg/handlers"
)

const csrfCookie = "csrf_token"

// Provider serves the identity provider callback endpoints mounted under
// /auth/{nextauth...}. The matched action is available as r.PathValue("nextauth").
type Provider interface {
	http.Handler
}

// SessionResponse describes the current session.
type SessionResponse struct {
	User    *User  `json:"user,omitempty"`
	Roles   []Role `json:"roles,omitempty"`
	Expires string `json:"expires,omitempty"`
}

// ProviderInfo describes a sign-in provider.
type ProviderInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	SigninURL string `json:"signinUrl"`
}

type sessionProvider struct {
	sys      System
	logger   *slog.Logger
	basePath string
}

// NewProvider returns the built-in session provider. It answers the session,
// providers, csrf and signout actions.
func NewProvider(sys System, logger *slog.Logger, basePath string) Provider {
	return &sessionProvider{
		sys:      sys,
		logger:   logger.With("provider", "session"),
		basePath: basePath,
	}
}

func (p *sessionProvider) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	action := strings.Trim(r.PathValue("nextauth"), "/")

	switch {
	case action == "session" && r.Method == http.MethodGet:
		p.session(w, r)
	case action == "providers" && r.Method == http.MethodGet:
		p.providers(w, r)
	case action == "csrf" && r.Method == http.MethodGet:
		p.csrf(w, r)
	case action == "signout" && r.Method == http.MethodPost:
		p.signout(w, r)
	default:
		handlers.RespondError(w, p.logger, http.StatusNotFound, ErrUnknownAction)
	}
}

func (p *sessionProvider) session(w http.ResponseWriter, r *http.Request) {
	u, ok := p.sys.FromRequest(r)
	if !ok {
		handlers.RespondJSON(w, http.StatusOK, SessionResponse{})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SessionResponse{
		User:    &u,
		Roles:   p.sys.Policy().Roles(u),
		Expires: time.Now().Add(p.sys.MaxAge()).UTC().Format(time.RFC3339),
	})
}

func (p *sessionProvider) providers(w http.ResponseWriter, r *http.Request) {
	result := map[string]ProviderInfo{}
	if p.sys.DevLogin() {
		result["dev"] = ProviderInfo{
			ID:        "dev",
			Name:      "Development login",
			Type:      "credentials",
			SigninURL: p.sys.Origin(r) + p.basePath + "/auth/login",
		}
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (p *sessionProvider) csrf(w http.ResponseWriter, r *http.Request) {
	token := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"csrfToken": token})
}

func (p *sessionProvider) signout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(csrfCookie)
	if err != nil || cookie.Value == "" || submittedCSRF(r) != cookie.Value {
		handlers.RespondError(w, p.logger, http.StatusForbidden, ErrInvalidCSRF)
		return
	}

	p.sys.ClearCookie(w)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"url": p.sys.Origin(r) + "/"})
}

func submittedCSRF(r *http.Request) string {
	if v := r.Header.Get("X-CSRF-Token"); v != "" {
		return v
	}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body struct {
			CSRFToken string `json:"csrfToken"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			return body.CSRFToken
		}
		return ""
	}
	return r.PostFormValue("csrfToken")
}

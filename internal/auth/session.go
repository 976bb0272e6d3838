package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "design-lab"

// Claims is the signed session payload stored in the session cookie.
type Claims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// User returns the session user. The subject carries the user id.
func (c *Claims) User() User {
	return User{ID: c.Subject, Name: c.Name, Email: c.Email}
}

// System issues and verifies session cookies and resolves user roles.
type System interface {
	// Issue signs a session token for u.
	Issue(u User) (string, error)

	// Parse verifies token and returns its user.
	Parse(token string) (User, error)

	// SetCookie writes the session cookie for u.
	SetCookie(w http.ResponseWriter, u User) error

	// ClearCookie expires the session cookie.
	ClearCookie(w http.ResponseWriter)

	// FromRequest returns the user carried by the request's session cookie.
	FromRequest(r *http.Request) (User, bool)

	// Policy returns the role policy.
	Policy() *Policy

	// DevLogin reports whether the development login route is enabled.
	DevLogin() bool

	// MaxAge returns the session lifetime.
	MaxAge() time.Duration

	// Origin returns the scheme and host used for redirects.
	Origin(r *http.Request) string
}

type sessions struct {
	cfg    *Config
	secret []byte
	policy *Policy
	logger *slog.Logger
	now    func() time.Time
}

// New creates the session system from a finalized Config.
func New(cfg *Config, logger *slog.Logger) System {
	return &sessions{
		cfg:    cfg,
		secret: []byte(cfg.Secret),
		policy: NewPolicy(cfg.OperatorEmail, cfg.Operators, cfg.Community),
		logger: logger.With("system", "auth"),
		now:    time.Now,
	}
}

func (s *sessions) Issue(u User) (string, error) {
	now := s.now()
	claims := &Claims{
		Name:  u.Name,
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.MaxAge())),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return token, nil
}

func (s *sessions) Parse(token string) (User, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return User{}, ErrExpiredSession
		}
		return User{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if !parsed.Valid {
		return User{}, ErrInvalidSession
	}

	u := claims.User()
	if u.ID == "" {
		u.ID = sessionID(u)
	}
	return u, nil
}

func (s *sessions) SetCookie(w http.ResponseWriter, u User) error {
	token, err := s.Issue(u)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.MaxAge().Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *sessions) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *sessions) FromRequest(r *http.Request) (User, bool) {
	cookie, err := r.Cookie(s.cfg.CookieName)
	if err != nil || cookie.Value == "" {
		return User{}, false
	}

	u, err := s.Parse(cookie.Value)
	if err != nil {
		s.logger.Debug("session rejected", "error", err)
		return User{}, false
	}
	return u, true
}

func (s *sessions) Policy() *Policy {
	return s.policy
}

func (s *sessions) DevLogin() bool {
	return s.cfg.DevLogin
}

func (s *sessions) MaxAge() time.Duration {
	return s.cfg.MaxAgeDuration()
}

func sessionID(u User) string {
	switch {
	case u.Email != "":
		return u.Email
	case u.Name != "":
		return u.Name
	default:
		return "unknown"
	}
}

func (s *sessions) Origin(r *http.Request) string {
	return Origin(r, s.cfg.TrustProxy)
}

package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/design-lab/pkg/handlers"
)

type contextKey struct{}

// WithUser returns a copy of ctx carrying u.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// UserFrom returns the session user stored in ctx, if any.
func UserFrom(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(contextKey{}).(User)
	return u, ok
}

// Middleware resolves the session cookie and stores the user in the request context.
// Requests without a valid session pass through anonymously.
func Middleware(sys System) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if u, ok := sys.FromRequest(r); ok {
				r = r.WithContext(WithUser(r.Context(), u))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser writes a 401 failure when the request carries no session.
func RequireUser(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (User, bool) {
	u, ok := UserFrom(r.Context())
	if !ok {
		handlers.RespondFailure(w, logger, http.StatusUnauthorized, "Unauthorized", ErrUnauthorized.Error())
		return User{}, false
	}
	return u, true
}

// RequireOperator writes 401 for anonymous requests and 403 for non-operators.
func RequireOperator(w http.ResponseWriter, r *http.Request, policy *Policy, logger *slog.Logger) (User, bool) {
	u, ok := RequireUser(w, r, logger)
	if !ok {
		return User{}, false
	}
	if !policy.HasRole(u, RoleOperator) {
		handlers.RespondFailure(w, logger, http.StatusForbidden, "Forbidden", ErrForbidden.Error())
		return User{}, false
	}
	return u, true
}

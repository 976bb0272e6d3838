package accesslog

import (
	"context"
	"net/http"
)

type clientKey struct{}

// Client identifies the caller behind a request.
type Client struct {
	IPAddress string
	UserAgent string
}

// WithClient returns a context carrying c.
func WithClient(ctx context.Context, c Client) context.Context {
	return context.WithValue(ctx, clientKey{}, c)
}

// ClientFrom returns the client stored in ctx, defaulting the address to "unknown".
func ClientFrom(ctx context.Context) Client {
	c, _ := ctx.Value(clientKey{}).(Client)
	if c.IPAddress == "" {
		c.IPAddress = "unknown"
	}
	return c
}

// Middleware stores the request's client details for server-side audit records.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithClient(r.Context(), Client{
				IPAddress: ClientIP(r),
				UserAgent: r.UserAgent(),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

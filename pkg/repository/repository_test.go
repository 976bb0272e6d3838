package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/JaimeStill/design-lab/pkg/repository"
)

var (
	errMissing   = errors.New("post not found")
	errDuplicate = errors.New("post exists")
)

func TestMapError(t *testing.T) {
	other := errors.New("connection reset")
	foreignKey := &pgconn.PgError{Code: "23503"}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", sql.ErrNoRows, errMissing},
		{"wrapped no rows", fmt.Errorf("scan: %w", sql.ErrNoRows), errMissing},
		{"unique violation", &pgconn.PgError{Code: "23505"}, errDuplicate},
		{"other pg error", foreignKey, foreignKey},
		{"other error", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repository.MapError(tt.err, errMissing, errDuplicate)
			if got != tt.want {
				t.Errorf("MapError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsCanceled(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), true},
		{"other", errors.New("relation does not exist"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repository.IsCanceled(tt.err); got != tt.want {
				t.Errorf("IsCanceled(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestFallback(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	failing := func(context.Context) ([]string, error) { return nil, errors.New("relation missing") }
	catalog := func() ([]string, error) { return []string{"catalog"}, nil }

	t.Run("success", func(t *testing.T) {
		got, err := repository.Fallback(t.Context(), logger, "list",
			func(context.Context) ([]string, error) { return []string{"db"}, nil }, catalog)
		if err != nil || len(got) != 1 || got[0] != "db" {
			t.Errorf("Fallback() = %v, %v; want [db]", got, err)
		}
	})

	t.Run("query failure", func(t *testing.T) {
		got, err := repository.Fallback(t.Context(), logger, "list", failing, catalog)
		if err != nil || len(got) != 1 || got[0] != "catalog" {
			t.Errorf("Fallback() = %v, %v; want [catalog]", got, err)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := repository.Fallback(ctx, logger, "list",
			func(ctx context.Context) ([]string, error) { return nil, ctx.Err() }, catalog)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Fallback() error = %v, want context.Canceled", err)
		}
	})
}

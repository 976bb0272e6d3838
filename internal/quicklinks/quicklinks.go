// Package quicklinks serves the shortcut links of the home page sidebar.
package quicklinks

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/design-lab/internal/catalog"
	"github.com/JaimeStill/design-lab/pkg/query"
	"github.com/JaimeStill/design-lab/pkg/repository"
)

// QuickLink is a labelled shortcut.
type QuickLink struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// System lists quick links.
type System interface {
	List(ctx context.Context) ([]QuickLink, error)
}

var projection = query.NewProjectionMap("public", "quick_links", "q").
	Project("text", "Text").
	Project("href", "Href")

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates the quick links system. A nil db serves the built-in catalog.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{db: db, logger: logger.With("system", "quicklinks")}
}

func (r *repo) List(ctx context.Context) ([]QuickLink, error) {
	fallback := func() ([]QuickLink, error) { return catalog.Section[QuickLink](catalog.QuickLinks) }
	if r.db == nil {
		return fallback()
	}

	return repository.Fallback(ctx, r.logger, "list quick links",
		func(ctx context.Context) ([]QuickLink, error) {
			q, args := query.NewBuilder(projection, query.SortField{Field: "q.sort_order"}).Build()
			return repository.QueryMany(ctx, r.db, q, args, func(s repository.Scanner) (QuickLink, error) {
				var l QuickLink
				err := s.Scan(&l.Text, &l.Href)
				return l, err
			})
		},
		fallback,
	)
}

// Seed loads the catalog quick links.
func Seed(ctx context.Context, q repository.Querier) error {
	links, err := catalog.Section[QuickLink](catalog.QuickLinks)
	if err != nil {
		return err
	}
	for i, l := range links {
		_, err := q.ExecContext(ctx,
			"INSERT INTO quick_links (id, text, href, sort_order) VALUES ($1, $2, $3, $4)",
			uuid.New(), l.Text, l.Href, i,
		)
		if err != nil {
			return fmt.Errorf("seed quick link %q: %w", l.Text, err)
		}
	}
	return nil
}

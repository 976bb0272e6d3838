// Package schedules serves the upcoming-events list shown on the home page.
package schedules

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

// Schedule is a dated event. Date is display text such as "2/10 (월)".
type Schedule struct {
	Date  string `json:"date"`
	Event string `json:"event"`
}

// System lists schedules.
type System interface {
	List(ctx context.Context) ([]Schedule, error)
}

var projection = query.NewProjectionMap("public", "schedules", "s").
	Project("date", "Date").
	Project("event", "Event").
	Project("sort_order", "SortOrder")

func scanSchedule(s repository.Scanner) (Schedule, error) {
	var (
		sc    Schedule
		order int
	)
	err := s.Scan(&sc.Date, &sc.Event, &order)
	return sc, err
}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates the schedules system. A nil db serves the built-in catalog.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{db: db, logger: logger.With("system", "schedules")}
}

func (r *repo) List(ctx context.Context) ([]Schedule, error) {
	fallback := func() ([]Schedule, error) { return catalog.Section[Schedule](catalog.Schedules) }
	if r.db == nil {
		return fallback()
	}

	return repository.Fallback(ctx, r.logger, "list schedules",
		func(ctx context.Context) ([]Schedule, error) {
			q, args := query.NewBuilder(projection,
				query.SortField{Field: "SortOrder"},
				query.SortField{Field: "Date"},
			).Build()
			return repository.QueryMany(ctx, r.db, q, args, scanSchedule)
		},
		fallback,
	)
}

// Seed loads the catalog schedules, preserving their order.
func Seed(ctx context.Context, q repository.Querier) error {
	items, err := catalog.Section[Schedule](catalog.Schedules)
	if err != nil {
		return err
	}
	for i, s := range items {
		_, err := q.ExecContext(ctx,
			"INSERT INTO schedules (id, date, event, sort_order) VALUES ($1, $2, $3, $4)",
			uuid.New(), s.Date, s.Event, i,
		)
		if err != nil {
			return fmt.Errorf("seed schedule %q: %w", s.Event, err)
		}
	}
	return nil
}

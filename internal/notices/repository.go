package notices

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/design-lab/internal/catalog"
	"github.com/JaimeStill/design-lab/pkg/database"
	"github.com/JaimeStill/design-lab/pkg/query"
	"github.com/JaimeStill/design-lab/pkg/repository"
)

// System defines notice reads and operator management.
type System interface {
	// List returns every notice, newest first.
	List(ctx context.Context) ([]Notice, error)

	// Admin returns notices with ids. Empty without a database.
	Admin(ctx context.Context) ([]Notice, error)

	// Create stores a notice dated today.
	Create(ctx context.Context, cmd CreateCommand) (*Notice, error)

	// Delete removes a notice.
	Delete(ctx context.Context, id string) error
}

var projection = query.NewProjectionMap("public", "notices", "n").
	Project("id", "ID").
	Project("title", "Title").
	Project("date", "Date").
	Project("badge", "Badge").
	Project("badge_color", "BadgeColor")

var defaultSort = []query.SortField{
	{Field: "Date", Descending: true},
}

func scanNotice(s repository.Scanner) (Notice, error) {
	var (
		n  Notice
		id uuid.UUID
	)
	err := s.Scan(&id, &n.Title, &n.Date, &n.Badge, &n.BadgeColor)
	n.ID = id.String()
	return n, err
}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

// New creates the notices system. A nil db serves the built-in catalog.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "notices"),
		now:    time.Now,
	}
}

func (r *repo) List(ctx context.Context) ([]Notice, error) {
	fallback := func() ([]Notice, error) { return catalog.Section[Notice](catalog.Notices) }
	if r.db == nil {
		return fallback()
	}

	return repository.Fallback(ctx, r.logger, "list notices",
		func(ctx context.Context) ([]Notice, error) {
			items, err := r.query(ctx)
			if err != nil {
				return nil, err
			}
			for i := range items {
				items[i].ID = ""
			}
			return items, nil
		},
		fallback,
	)
}

func (r *repo) Admin(ctx context.Context) ([]Notice, error) {
	empty := func() ([]Notice, error) { return []Notice{}, nil }
	if r.db == nil {
		return empty()
	}
	return repository.Fallback(ctx, r.logger, "admin notices", r.query, empty)
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Notice, error) {
	if r.db == nil {
		return nil, database.ErrDisabled
	}
	if err := cmd.Normalize(); err != nil {
		return nil, err
	}

	n := Notice{
		ID:         uuid.NewString(),
		Title:      cmd.Title,
		Date:       r.now().UTC().Format("2006.01.02"),
		Badge:      cmd.Badge,
		BadgeColor: cmd.BadgeColor,
	}

	if err := insertNotice(ctx, r.db, n, 0); err != nil {
		return nil, fmt.Errorf("insert notice: %w", err)
	}

	r.logger.Info("notice created", "id", n.ID, "title", n.Title)
	return &n, nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	if r.db == nil {
		return database.ErrDisabled
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	if err := repository.ExecExpectOne(ctx, r.db, "DELETE FROM notices WHERE id = $1", uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete notice: %w", err)
	}

	r.logger.Info("notice deleted", "id", id)
	return nil
}

func (r *repo) query(ctx context.Context) ([]Notice, error) {
	q, args := query.NewBuilder(projection, defaultSort...).Build()
	return repository.QueryMany(ctx, r.db, q, args, scanNotice)
}

// Seed loads the catalog notices.
func Seed(ctx context.Context, q repository.Querier) error {
	items, err := catalog.Section[Notice](catalog.Notices)
	if err != nil {
		return err
	}
	for i, n := range items {
		n.ID = uuid.NewString()
		if err := insertNotice(ctx, q, n, i); err != nil {
			return fmt.Errorf("seed notice %q: %w", n.Title, err)
		}
	}
	return nil
}

func insertNotice(ctx context.Context, q repository.Querier, n Notice, order int) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO notices (id, title, date, badge, badge_color, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		n.ID, n.Title, n.Date, n.Badge, n.BadgeColor, order,
	)
	return err
}

package home

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/design-lab/pkg/database"
	"github.com/JaimeStill/design-lab/pkg/query"
	"github.com/JaimeStill/design-lab/pkg/repository"
)

// System manages home banners and PlayDay guides.
type System interface {
	// Persistent reports whether content can be managed.
	Persistent() bool

	// Banners returns banners ordered by sort order then newest.
	Banners(ctx context.Context, activeOnly bool) ([]Banner, error)

	// Banner returns a single banner.
	Banner(ctx context.Context, id string) (*Banner, error)

	// Guides returns PlayDay guides ordered by sort order then newest.
	Guides(ctx context.Context, activeOnly bool) ([]Guide, error)

	CreateBanner(ctx context.Context, cmd BannerCommand) (*Banner, error)
	CreateGuide(ctx context.Context, cmd GuideCommand) (*Guide, error)
	DeleteBanner(ctx context.Context, id string) error
	DeleteGuide(ctx context.Context, id string) error
}

var bannerProjection = query.NewProjectionMap("public", "home_banners", "b").
	Project("id", "ID").
	Project("title", "Title").
	Project("description", "Description").
	Project("content", "Content").
	Project("href", "Href").
	Project("is_active", "IsActive").
	Project("sort_order", "SortOrder")

var guideProjection = query.NewProjectionMap("public", "home_playday_guides", "g").
	Project("id", "ID").
	Project("title", "Title").
	Project("description", "Description").
	Project("is_active", "IsActive").
	Project("sort_order", "SortOrder")

var bannerSort = []query.SortField{
	{Field: "SortOrder"},
	{Field: "b.created_at", Descending: true},
}

var guideSort = []query.SortField{
	{Field: "SortOrder"},
	{Field: "g.created_at", Descending: true},
}

func scanBanner(s repository.Scanner) (Banner, error) {
	var (
		b    Banner
		id   uuid.UUID
		href sql.NullString
	)
	err := s.Scan(&id, &b.Title, &b.Description, &b.Content, &href, &b.IsActive, &b.SortOrder)
	b.ID = id.String()
	b.Href = href.String
	return b, err
}

func scanGuide(s repository.Scanner) (Guide, error) {
	var (
		g  Guide
		id uuid.UUID
	)
	err := s.Scan(&id, &g.Title, &g.Description, &g.IsActive, &g.SortOrder)
	g.ID = id.String()
	return g, err
}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates the home content system. Without a database every list is empty.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{db: db, logger: logger.With("system", "home")}
}

func (r *repo) Persistent() bool {
	return r.db != nil
}

func (r *repo) Banners(ctx context.Context, activeOnly bool) ([]Banner, error) {
	empty := func() ([]Banner, error) { return []Banner{}, nil }
	if r.db == nil {
		return empty()
	}

	return repository.Fallback(ctx, r.logger, "list banners",
		func(ctx context.Context) ([]Banner, error) {
			qb := query.NewBuilder(bannerProjection, bannerSort...)
			if activeOnly {
				qb.WhereEquals("IsActive", true)
			}
			q, args := qb.Build()
			return repository.QueryMany(ctx, r.db, q, args, scanBanner)
		},
		empty,
	)
}

func (r *repo) Banner(ctx context.Context, id string) (*Banner, error) {
	if r.db == nil {
		return nil, ErrNotFound
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	q, args := query.NewBuilder(bannerProjection).BuildSingle("ID", uid)
	b, err := repository.QueryOne(ctx, r.db, q, args, scanBanner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query banner: %w", err)
	}
	return &b, nil
}

func (r *repo) Guides(ctx context.Context, activeOnly bool) ([]Guide, error) {
	empty := func() ([]Guide, error) { return []Guide{}, nil }
	if r.db == nil {
		return empty()
	}

	return repository.Fallback(ctx, r.logger, "list playday guides",
		func(ctx context.Context) ([]Guide, error) {
			qb := query.NewBuilder(guideProjection, guideSort...)
			if activeOnly {
				qb.WhereEquals("IsActive", true)
			}
			q, args := qb.Build()
			return repository.QueryMany(ctx, r.db, q, args, scanGuide)
		},
		empty,
	)
}

func (r *repo) CreateBanner(ctx context.Context, cmd BannerCommand) (*Banner, error) {
	if r.db == nil {
		return nil, database.ErrDisabled
	}
	if err := cmd.normalize(); err != nil {
		return nil, err
	}

	b := Banner{
		ID:          uuid.NewString(),
		Title:       cmd.Title,
		Description: cmd.Description,
		Content:     cmd.Content,
		Href:        cmd.Href,
		IsActive:    true,
	}

	href := sql.NullString{String: b.Href, Valid: b.Href != ""}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO home_banners (id, title, description, content, href)
		VALUES ($1, $2, $3, $4, $5)`,
		b.ID, b.Title, b.Description, b.Content, href,
	)
	if err != nil {
		return nil, fmt.Errorf("insert banner: %w", err)
	}

	r.logger.Info("banner created", "id", b.ID, "title", b.Title)
	return &b, nil
}

func (r *repo) CreateGuide(ctx context.Context, cmd GuideCommand) (*Guide, error) {
	if r.db == nil {
		return nil, database.ErrDisabled
	}
	if err := cmd.normalize(); err != nil {
		return nil, err
	}

	g := Guide{
		ID:          uuid.NewString(),
		Title:       cmd.Title,
		Description: cmd.Description,
		IsActive:    true,
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO home_playday_guides (id, title, description) VALUES ($1, $2, $3)",
		g.ID, g.Title, g.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("insert playday guide: %w", err)
	}

	r.logger.Info("playday guide created", "id", g.ID, "title", g.Title)
	return &g, nil
}

func (r *repo) DeleteBanner(ctx context.Context, id string) error {
	return r.delete(ctx, "home_banners", id)
}

func (r *repo) DeleteGuide(ctx context.Context, id string) error {
	return r.delete(ctx, "home_playday_guides", id)
}

func (r *repo) delete(ctx context.Context, table, id string) error {
	if r.db == nil {
		return database.ErrDisabled
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	q := fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)
	if err := repository.ExecExpectOne(ctx, r.db, q, uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete from %s: %w", table, err)
	}

	r.logger.Info("home content deleted", "table", table, "id", id)
	return nil
}

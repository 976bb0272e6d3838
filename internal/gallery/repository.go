package gallery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/design-lab/internal/auth"
	"github.com/JaimeStill/design-lab/internal/catalog"
	"github.com/JaimeStill/design-lab/pkg/database"
	"github.com/JaimeStill/design-lab/pkg/query"
	"github.com/JaimeStill/design-lab/pkg/repository"
)

// DateLayout is the YYYY.MM.DD form used for post dates.
const DateLayout = "2006.01.02"

type repo struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

// New creates the gallery system. A nil db serves the built-in catalog.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "gallery"),
		now:    time.Now,
	}
}

func (r *repo) Persistent() bool {
	return r.db != nil
}

func (r *repo) Section(ctx context.Context, s Section) ([]Item, error) {
	fallback := func() ([]Item, error) { return catalogSection(s) }
	if r.db == nil {
		return fallback()
	}

	return repository.Fallback(ctx, r.logger, "section "+string(s),
		func(ctx context.Context) ([]Item, error) {
			q, args := query.NewBuilder(projection, defaultSort...).
				WhereEquals("Section", string(s)).
				Build()
			return repository.QueryMany(ctx, r.db, q, args, scanItem)
		},
		fallback,
	)
}

func (r *repo) Playday(ctx context.Context) ([]Item, error) {
	return r.Section(ctx, SectionPlayday)
}

func (r *repo) Activity(ctx context.Context) ([]Item, error) {
	return r.Section(ctx, SectionActivity)
}

func (r *repo) Playbook(ctx context.Context, c PlaybookCategory) ([]Item, error) {
	return r.Section(ctx, c.Section())
}

func (r *repo) PlaybookAll(ctx context.Context) (map[PlaybookCategory][]Item, error) {
	sections := make([]Section, len(PlaybookCategories))
	for i, c := range PlaybookCategories {
		sections[i] = c.Section()
	}

	results, err := r.sections(ctx, sections)
	if err != nil {
		return nil, err
	}

	all := make(map[PlaybookCategory][]Item, len(PlaybookCategories))
	for i, c := range PlaybookCategories {
		all[c] = results[i]
	}
	return all, nil
}

func (r *repo) Marquee(ctx context.Context) (*Marquee, error) {
	top := []Section{
		SectionPlayday,
		SectionPlaybookUsecase,
		SectionPlaybookHAI,
		SectionPlaybookTeams,
		SectionPlaybookInterview,
	}
	bottom := []Section{
		SectionPlaybookTrend,
		SectionPlaybookPrompt,
		SectionActivity,
	}

	results, err := r.sections(ctx, append(top, bottom...))
	if err != nil {
		return nil, err
	}

	return &Marquee{
		TopRow:    concat(results[:len(top)]),
		BottomRow: concat(results[len(top):]),
	}, nil
}

func (r *repo) AdminContent(ctx context.Context) ([]AdminItem, error) {
	results, err := r.sections(ctx, Sections)
	if err != nil {
		return nil, err
	}

	content := make([]AdminItem, 0)
	for i, s := range Sections {
		for _, item := range results[i] {
			content = append(content, AdminItem{Item: item, Section: s.Label()})
		}
	}
	return content, nil
}

func (r *repo) Find(ctx context.Context, id string) (*Item, error) {
	if r.db == nil {
		return nil, database.ErrDisabled
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	q, args := query.NewBuilder(projection).BuildSingle("ID", uid)
	item, err := repository.QueryOne(ctx, r.db, q, args, scanItem)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query gallery item: %w", err)
	}
	return &item, nil
}

func (r *repo) Create(ctx context.Context, s Section, cmd CreateCommand, u auth.User) (*Item, error) {
	if r.db == nil {
		return nil, database.ErrDisabled
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item := Item{
		ID:          uuid.NewString(),
		Section:     s,
		Title:       cmd.Title,
		Description: cmd.Description,
		Author:      u.DisplayName(),
		Date:        r.now().UTC().Format(DateLayout),
		Category:    cmd.Category,
		Thumbnail:   cmd.Thumbnail,
		Tags:        normalizeTags(cmd.Tags),
		Attachments: normalizeAttachments(cmd.Attachments),
	}

	if _, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, insertItem(ctx, tx, item)
	}); err != nil {
		return nil, fmt.Errorf("insert gallery item: %w", err)
	}

	r.logger.Info("post created", "id", item.ID, "section", item.Section, "author", item.Author)
	return &item, nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	if r.db == nil {
		return database.ErrDisabled
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	err = repository.ExecExpectOne(ctx, r.db, "DELETE FROM gallery_items WHERE id = $1", uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete gallery item: %w", err)
	}

	r.logger.Info("post deleted", "id", id)
	return nil
}

// sections fetches each section concurrently. Results keep the order of in.
func (r *repo) sections(ctx context.Context, in []Section) ([][]Item, error) {
	results := make([][]Item, len(in))
	g, gctx := errgroup.WithContext(ctx)

	for i, s := range in {
		g.Go(func() error {
			items, err := r.Section(gctx, s)
			if err != nil {
				return fmt.Errorf("%s: %w", s, err)
			}
			results[i] = items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Seed loads every catalog section into gallery_items.
func Seed(ctx context.Context, q repository.Querier) error {
	for _, s := range Sections {
		items, err := catalogSection(s)
		if err != nil {
			return err
		}
		for _, item := range items {
			item.ID = uuid.NewString()
			if err := insertItem(ctx, q, item); err != nil {
				return fmt.Errorf("seed %s: %w", s, err)
			}
		}
	}
	return nil
}

func insertItem(ctx context.Context, q repository.Querier, item Item) error {
	tags, err := jsonArray(item.Tags)
	if err != nil {
		return err
	}
	attachments, err := jsonArray(item.Attachments)
	if err != nil {
		return err
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO gallery_items (
			id, section, title, description, author, date, category,
			thumbnail, full_description, tags, attachments, session
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		item.ID, string(item.Section), item.Title, item.Description, item.Author,
		item.Date, item.Category, nullString(item.Thumbnail), nullString(item.FullDescription),
		tags, attachments, nullInt(item.Session),
	)
	return err
}

func catalogSection(s Section) ([]Item, error) {
	items, err := catalog.Section[Item](string(s))
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Section = s
	}
	return items, nil
}

func concat(parts [][]Item) []Item {
	out := make([]Item, 0)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	"github.com/JaimeStill/design-lab/internal/gallery"
	"github.com/JaimeStill/design-lab/internal/notices"
	"github.com/JaimeStill/design-lab/internal/quicklinks"
	"github.com/JaimeStill/design-lab/internal/schedules"
	"github.com/JaimeStill/design-lab/pkg/repository"
)

// Seeder populates one table from the built-in catalog.
type Seeder interface {
	Name() string
	Description() string
	Seed(ctx context.Context, tx *sql.Tx) error
}

// catalogSeeder clears its table and loads the catalog rows in the same transaction.
type catalogSeeder struct {
	name        string
	description string
	table       string
	seed        func(ctx context.Context, q repository.Querier) error
}

func (s catalogSeeder) Name() string        { return s.name }
func (s catalogSeeder) Description() string { return s.description }

func (s catalogSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+s.table); err != nil {
		return fmt.Errorf("clear %s: %w", s.table, err)
	}
	return s.seed(ctx, tx)
}

var seeders = map[string]Seeder{}

func registerSeeder(s Seeder) {
	seeders[s.Name()] = s
}

func init() {
	registerSeeder(catalogSeeder{"gallery", "PlayDay, playbook and activity posts", "gallery_items", gallery.Seed})
	registerSeeder(catalogSeeder{"notices", "home page notices", "notices", notices.Seed})
	registerSeeder(catalogSeeder{"schedules", "upcoming schedule entries", "schedules", schedules.Seed})
	registerSeeder(catalogSeeder{"quicklinks", "quick link shortcuts", "quick_links", quicklinks.Seed})
}

func getSeeder(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// listSeeders returns the registered seeders ordered by name.
func listSeeders() []Seeder {
	result := make([]Seeder, 0, len(seeders))
	for _, s := range seeders {
		result = append(result, s)
	}
	slices.SortFunc(result, func(a, b Seeder) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return result
}

// runSeeders executes the named seeders in one transaction. No names runs
// every seeder. Any failure rolls back the whole run.
func runSeeders(ctx context.Context, db *sql.DB, names ...string) ([]string, error) {
	selected := make([]Seeder, 0, len(names))
	if len(names) == 0 {
		selected = listSeeders()
	}
	for _, name := range names {
		s, ok := getSeeder(name)
		if !ok {
			return nil, fmt.Errorf("seeder not found: %s", name)
		}
		selected = append(selected, s)
	}

	return repository.WithTx(ctx, db, func(tx *sql.Tx) ([]string, error) {
		done := make([]string, 0, len(selected))
		for _, s := range selected {
			if err := s.Seed(ctx, tx); err != nil {
				return nil, fmt.Errorf("seed %s: %w", s.Name(), err)
			}
			done = append(done, s.Name())
		}
		return done, nil
	})
}

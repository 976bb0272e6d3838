package gallery

import (
	"context"

	"github.com/JaimeStill/design-lab/internal/auth"
)

// System defines gallery reads and post management.
type System interface {
	// Persistent reports whether posts can be written.
	Persistent() bool

	// Section returns the items of a section, newest first.
	Section(ctx context.Context, s Section) ([]Item, error)

	// Playday returns the PlayDay gallery.
	Playday(ctx context.Context) ([]Item, error)

	// Activity returns the ACE community feed.
	Activity(ctx context.Context) ([]Item, error)

	// Playbook returns one Playbook category.
	Playbook(ctx context.Context, c PlaybookCategory) ([]Item, error)

	// PlaybookAll returns every Playbook category keyed by category name.
	PlaybookAll(ctx context.Context) (map[PlaybookCategory][]Item, error)

	// Marquee composes the showcase rows.
	Marquee(ctx context.Context) (*Marquee, error)

	// AdminContent returns every item labelled with its section.
	AdminContent(ctx context.Context) ([]AdminItem, error)

	// Find returns a stored post.
	Find(ctx context.Context, id string) (*Item, error)

	// Create stores a post authored by u in section s.
	Create(ctx context.Context, s Section, cmd CreateCommand, u auth.User) (*Item, error)

	// Delete removes a stored post.
	Delete(ctx context.Context, id string) error
}

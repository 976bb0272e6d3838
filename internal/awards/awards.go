// Package awards declares the award shapes exchanged with the showcase UI.
package awards

import (
	"errors"
	"fmt"
	"strings"
)

// Category classifies an award.
type Category string

const (
	Website      Category = "Website"
	Mobile       Category = "Mobile"
	Installation Category = "Installation"
	FWOTD        Category = "FWOTD"
)

// Categories lists every category in display order.
var Categories = []Category{Website, Mobile, Installation, FWOTD}

// FilterAll is the filter value matching every category.
const FilterAll = "all"

var (
	ErrInvalidCategory = errors.New("invalid award category")
	ErrMissingField    = errors.New("missing award field")
)

// Validate reports ErrInvalidCategory for values outside Categories.
func (c Category) Validate() error {
	for _, known := range Categories {
		if c == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidCategory, string(c))
}

// Award is a recognized project.
type Award struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Studio      string   `json:"studio"`
	Thumbnail   string   `json:"thumbnail"`
	Date        string   `json:"date"`
	Points      float64  `json:"points"`
	Category    Category `json:"category"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Validate checks that required fields are present and the category is known.
func (a Award) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"id", a.ID},
		{"title", a.Title},
		{"studio", a.Studio},
		{"thumbnail", a.Thumbnail},
		{"date", a.Date},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return a.Category.Validate()
}

// FilterOption is a selectable value with its display label.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CategoryFilters returns the "all" option followed by one option per category.
func CategoryFilters() []FilterOption {
	opts := make([]FilterOption, 0, len(Categories)+1)
	opts = append(opts, FilterOption{Value: FilterAll, Label: "All"})
	for _, c := range Categories {
		opts = append(opts, FilterOption{Value: string(c), Label: string(c)})
	}
	return opts
}

// Filter returns the awards matching value. FilterAll and the empty string
// match everything.
func Filter(items []Award, value string) []Award {
	out := make([]Award, 0, len(items))
	for _, a := range items {
		if value == "" || value == FilterAll || string(a.Category) == value {
			out = append(out, a)
		}
	}
	return out
}

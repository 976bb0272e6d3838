package notices

import (
	"errors"
	"net/http"
	"strings"

	"github.com/JaimeStill/design-lab/pkg/database"
)

const (
	DefaultBadge      = "공지"
	DefaultBadgeColor = "bg-gray-700"
)

var (
	ErrNotFound     = errors.New("notice not found")
	ErrTitleMissing = errors.New("title is required")
)

// Notice is a bulletin shown on the home page. Operator views carry the id.
type Notice struct {
	ID         string `json:"id,omitempty"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	Badge      string `json:"badge"`
	BadgeColor string `json:"badgeColor"`
}

// CreateCommand is the payload of a new notice.
type CreateCommand struct {
	Title      string `json:"title"`
	Badge      string `json:"badge"`
	BadgeColor string `json:"badgeColor"`
}

// Normalize trims fields and applies badge defaults.
func (c *CreateCommand) Normalize() error {
	c.Title = strings.TrimSpace(c.Title)
	c.Badge = strings.TrimSpace(c.Badge)
	c.BadgeColor = strings.TrimSpace(c.BadgeColor)

	if c.Title == "" {
		return ErrTitleMissing
	}
	if c.Badge == "" {
		c.Badge = DefaultBadge
	}
	if c.BadgeColor == "" {
		c.BadgeColor = DefaultBadgeColor
	}
	return nil
}

// MapHTTPStatus maps notice errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrTitleMissing), errors.Is(err, database.ErrDisabled):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

package home

import (
	"errors"
	"strings"

	"github.com/JaimeStill/design-lab/internal/notices"
)

var (
	ErrNotFound           = errors.New("home content not found")
	ErrTitleMissing       = errors.New("title is required")
	ErrDescriptionMissing = errors.New("description is required")
	ErrContentType        = errors.New("contentType must be banner, notice or playday-guide")
)

// ContentType selects the kind of home content an operator manages.
type ContentType string

const (
	ContentBanner ContentType = "banner"
	ContentNotice ContentType = "notice"
	ContentGuide  ContentType = "playday-guide"
)

// Banner is a home page hero slide.
type Banner struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content,omitempty"`
	Href        string `json:"href,omitempty"`
	IsActive    bool   `json:"isActive"`
	SortOrder   int    `json:"sortOrder"`
}

// Guide is a PlayDay participation guide card.
type Guide struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	SortOrder   int    `json:"sortOrder"`
}

// Content is the combined home page payload.
type Content struct {
	Banners       []Banner         `json:"banners"`
	Notices       []notices.Notice `json:"notices"`
	PlaydayGuides []Guide          `json:"playdayGuides"`
}

// BannerCommand creates a banner.
type BannerCommand struct {
	Title       string
	Description string
	Content     string
	Href        string
}

func (c *BannerCommand) normalize() error {
	c.Title = strings.TrimSpace(c.Title)
	c.Description = strings.TrimSpace(c.Description)
	c.Content = strings.TrimSpace(c.Content)
	c.Href = strings.TrimSpace(c.Href)
	if c.Title == "" {
		return ErrTitleMissing
	}
	return nil
}

// GuideCommand creates a PlayDay guide.
type GuideCommand struct {
	Title       string
	Description string
}

func (c *GuideCommand) normalize() error {
	c.Title = strings.TrimSpace(c.Title)
	c.Description = strings.TrimSpace(c.Description)
	if c.Title == "" {
		return ErrTitleMissing
	}
	if c.Description == "" {
		return ErrDescriptionMissing
	}
	return nil
}

// ContentRequest is the operator request body for creating or deleting content.
type ContentRequest struct {
	ContentType ContentType `json:"contentType"`
	ID          string      `json:"id,omitempty"`
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description,omitempty"`
	Content     string      `json:"content,omitempty"`
	Href        string      `json:"href,omitempty"`
	Badge       string      `json:"badge,omitempty"`
	BadgeColor  string      `json:"badgeColor,omitempty"`
}

// IsValidation reports whether err is a rejected operator input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrTitleMissing) ||
		errors.Is(err, ErrDescriptionMissing) ||
		errors.Is(err, ErrContentType) ||
		errors.Is(err, notices.ErrTitleMissing)
}

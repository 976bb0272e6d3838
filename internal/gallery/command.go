package gallery

import (
	"strings"

	"github.com/docker/go-units"
)

// CreateCommand is the payload of a new post.
type CreateCommand struct {
	Section     string       `json:"section"`
	Category    string       `json:"category"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Tags        []string     `json:"tags,omitempty"`
	Thumbnail   string       `json:"thumbnail,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Validate requires section, category and title.
func (c CreateCommand) Validate() error {
	if strings.TrimSpace(c.Section) == "" ||
		strings.TrimSpace(c.Category) == "" ||
		strings.TrimSpace(c.Title) == "" {
		return ErrInvalidPost
	}
	return nil
}

// ResolveSection maps the generic "playbook" section to the section of the
// primary (first comma-separated) category.
func (c CreateCommand) ResolveSection() Section {
	section := strings.TrimSpace(c.Section)
	primary, _, _ := strings.Cut(c.Category, ",")
	primary = strings.TrimSpace(primary)

	if section == "playbook" && primary != "" {
		for _, cat := range PlaybookCategories {
			if string(cat) == primary {
				return cat.Section()
			}
		}
	}
	return Section(section)
}

// NormalizeSize rewrites a human-readable size in canonical decimal form
// ("2500kB" becomes "2.5MB"). Unparseable sizes are returned trimmed.
func NormalizeSize(size string) string {
	size = strings.TrimSpace(size)
	if size == "" {
		return size
	}
	n, err := units.FromHumanSize(size)
	if err != nil {
		return size
	}
	return units.HumanSize(float64(n))
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func normalizeAttachments(atts []Attachment) []Attachment {
	out := make([]Attachment, 0, len(atts))
	for _, a := range atts {
		a.Name = strings.TrimSpace(a.Name)
		if a.Name == "" {
			continue
		}
		a.Size = NormalizeSize(a.Size)
		out = append(out, a)
	}
	return out
}

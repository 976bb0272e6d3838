package gallery

import (
	"strings"

	"github.com/JaimeStill/design-lab/internal/auth"
	"github.com/JaimeStill/design-lab/internal/catalog"
)

// Section identifies the gallery a post belongs to.
type Section string

const (
	SectionPlayday           Section = catalog.Playday
	SectionActivity          Section = catalog.Activity
	SectionPlaybookUsecase   Section = catalog.PlaybookUsecase
	SectionPlaybookTrend     Section = catalog.PlaybookTrend
	SectionPlaybookPrompt    Section = catalog.PlaybookPrompt
	SectionPlaybookHAI       Section = catalog.PlaybookHAI
	SectionPlaybookTeams     Section = catalog.PlaybookTeams
	SectionPlaybookInterview Section = catalog.PlaybookInterview
)

const playbookPrefix = "playbook_"

// Sections lists every section in admin display order.
var Sections = []Section{
	SectionPlayday,
	SectionPlaybookUsecase,
	SectionPlaybookTrend,
	SectionPlaybookPrompt,
	SectionPlaybookHAI,
	SectionPlaybookTeams,
	SectionPlaybookInterview,
	SectionActivity,
}

var sectionLabels = map[Section]string{
	SectionPlayday:           "PlayDay",
	SectionPlaybookUsecase:   "Playbook 활용사례",
	SectionPlaybookTrend:     "Playbook 트렌드",
	SectionPlaybookPrompt:    "Playbook 프롬프트",
	SectionPlaybookHAI:       "Playbook HAI",
	SectionPlaybookTeams:     "Playbook Teams",
	SectionPlaybookInterview: "Playbook 인터뷰",
	SectionActivity:          "ACE 커뮤니티",
}

// Label returns the operator-facing name of the section.
func (s Section) Label() string {
	if l, ok := sectionLabels[s]; ok {
		return l
	}
	return string(s)
}

// IsPlaybook reports whether s is one of the Playbook sections.
func (s Section) IsPlaybook() bool {
	return strings.HasPrefix(string(s), playbookPrefix)
}

// WriteRole returns the role required to post to s. Unknown sections
// accept no writes.
func (s Section) WriteRole() (auth.Role, bool) {
	switch {
	case s == SectionPlayday, s == SectionActivity:
		return auth.RoleCommunity, true
	case s.IsPlaybook():
		if _, ok := sectionLabels[s]; ok {
			return auth.RoleOperator, true
		}
	}
	return "", false
}

// DeniedMessage explains why a user cannot post to s.
func (s Section) DeniedMessage() string {
	switch {
	case s == SectionPlayday:
		return "PlayDay 작성 권한이 없습니다."
	case s == SectionActivity:
		return "ACE 커뮤니티 작성 권한이 없습니다."
	case s.IsPlaybook():
		return "Playbook 작성은 운영진만 가능합니다."
	default:
		return "허용되지 않은 작성 섹션입니다."
	}
}

// Attachment is a downloadable file linked from a post.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size string `json:"size"`
	Type string `json:"type"`
}

// Item is a gallery post. Catalog items carry no id.
type Item struct {
	ID              string       `json:"id,omitempty"`
	Section         Section      `json:"-"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Author          string       `json:"author"`
	Date            string       `json:"date"`
	Category        string       `json:"category"`
	Thumbnail       string       `json:"thumbnail,omitempty"`
	FullDescription string       `json:"fullDescription,omitempty"`
	Tags            []string     `json:"tags,omitempty"`
	Attachments     []Attachment `json:"attachments,omitempty"`
	Session         int          `json:"session,omitempty"`
}

// AdminItem is an item labelled with its section for the operator console.
type AdminItem struct {
	Item
	Section string `json:"section"`
}

// Marquee feeds the two scrolling showcase rows.
type Marquee struct {
	TopRow    []Item `json:"topRow"`
	BottomRow []Item `json:"bottomRow"`
}

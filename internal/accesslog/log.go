// Package accesslog records user activity and moderation events and serves
// them to operators as paginated listings, online presence and xlsx exports.
package accesslog

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/docker/go-units"

	"github.com/JaimeStill/design-lab/pkg/database"
)

// Action names an activity recorded in the log.
type Action string

const (
	PageView      Action = "page_view"
	Login         Action = "login"
	Logout        Action = "logout"
	Download      Action = "download"
	Click         Action = "click"
	PostDelete    Action = "post_delete"
	PostEdit      Action = "post_edit"
	ContentDelete Action = "content_delete"
	ContentHide   Action = "content_hide"
	CommentDelete Action = "comment_delete"
)

// ClientActions may be submitted by the browser. Moderation actions are
// recorded server side only.
var ClientActions = []Action{PageView, Login, Logout, Download, Click}

var actionLabels = map[Action]string{
	PageView:      "페이지 방문",
	Login:         "로그인",
	Logout:        "로그아웃",
	Download:      "다운로드",
	Click:         "클릭",
	PostDelete:    "게시글 삭제",
	PostEdit:      "게시글 수정",
	ContentDelete: "콘텐츠 삭제",
	ContentHide:   "콘텐츠 숨김",
	CommentDelete: "댓글 삭제",
}

// Label returns the localized action name used in exports.
func (a Action) Label() string {
	if l, ok := actionLabels[a]; ok {
		return l
	}
	return string(a)
}

// Valid reports whether a may be submitted by a client.
func (a Action) Valid() bool {
	return slices.Contains(ClientActions, a)
}

// OnlineThreshold is how recently a user must have acted to count as online.
const OnlineThreshold = 5 * time.Minute

// MaxExportRows caps a single export.
const MaxExportRows = 10000

// MaxRecordSize bounds the body of a record request.
const MaxRecordSize int64 = 16 * units.KiB

var (
	ErrInvalidAction = errors.New("Invalid action")
	ErrInvalidDate   = errors.New("invalid date")
)

// Log is a stored activity record.
type Log struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	UserName  *string         `json:"userName"`
	Action    Action          `json:"action"`
	Path      *string         `json:"path"`
	UserAgent *string         `json:"userAgent"`
	IPAddress *string         `json:"ipAddress"`
	Metadata  json.RawMessage `json:"metadata"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Entry is a new record.
type Entry struct {
	Email     string
	UserName  string
	Action    Action
	Path      string
	UserAgent string
	IPAddress string
	Metadata  map[string]any
}

// OnlineUser is the latest activity of a recently active user.
type OnlineUser struct {
	Email      string  `json:"email"`
	UserName   *string `json:"userName"`
	LastAction Action  `json:"lastAction"`
	LastPath   *string `json:"lastPath"`
	LastSeen   string  `json:"lastSeen"`
	IPAddress  *string `json:"ipAddress"`
}

// Online lists users seen within the threshold.
type Online struct {
	OnlineUsers []OnlineUser `json:"onlineUsers"`
	TotalOnline int          `json:"totalOnline"`
	Threshold   int64        `json:"threshold"`
}

// Filters narrow a log listing. To is exclusive.
type Filters struct {
	Actions []Action
	Email   *string
	From    *time.Time
	To      *time.Time
}

// ClientIP returns the first X-Forwarded-For hop, then X-Real-IP, then "unknown".
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	return "unknown"
}

// ParseBound parses a date filter. Date-only values name a whole UTC day:
// the lower bound is its midnight and the exclusive upper bound the next
// midnight. RFC 3339 timestamps are exact, with upper bounds made inclusive.
func ParseBound(s string, upper bool) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.DateOnly, s); err == nil {
		if upper {
			t = t.AddDate(0, 0, 1)
		}
		return &t, nil
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, ErrInvalidDate
	}
	t = t.UTC()
	if upper {
		t = t.Add(time.Microsecond)
	}
	return &t, nil
}

// MapHTTPStatus maps access log errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAction), errors.Is(err, ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, database.ErrDisabled):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

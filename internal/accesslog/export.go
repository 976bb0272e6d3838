package accesslog

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ContentType is the media type of an exported workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// LogType selects an export sheet.
type LogType string

const (
	LogTypeAccess     LogType = "access"
	LogTypeDownload   LogType = "download"
	LogTypeModeration LogType = "moderation"
)

// ParseLogType defaults unknown values to access.
func ParseLogType(s string) LogType {
	switch LogType(s) {
	case LogTypeDownload:
		return LogTypeDownload
	case LogTypeModeration:
		return LogTypeModeration
	default:
		return LogTypeAccess
	}
}

// Actions returns the actions exported for t.
func (t LogType) Actions() []Action {
	switch t {
	case LogTypeDownload:
		return []Action{Download}
	case LogTypeModeration:
		return []Action{PostDelete, PostEdit, ContentDelete, ContentHide, CommentDelete}
	default:
		return []Action{PageView, Login, Logout, Click}
	}
}

// SheetName is the localized worksheet name.
func (t LogType) SheetName() string {
	switch t {
	case LogTypeDownload:
		return "다운로드 로그"
	case LogTypeModeration:
		return "삭제_숨김 로그"
	default:
		return "접속 로그"
	}
}

// Filename names an export produced at now.
func (t LogType) Filename(now time.Time) string {
	return fmt.Sprintf("AI디자인랩_%s_%s.xlsx", t.SheetName(), now.UTC().Format("20060102"))
}

// ExportTimeLayout formats timestamps in exported rows.
const ExportTimeLayout = "2006-01-02 15:04:05"

const missing = "-"

// Column is a worksheet header with its width in characters.
type Column struct {
	Label string
	Width float64
}

var commonColumns = []Column{
	{"일시", 22},
	{"사용자", 20},
	{"이메일", 28},
	{"작업", 16},
}

// Columns returns the worksheet layout of t.
func (t LogType) Columns() []Column {
	cols := slices.Clone(commonColumns)
	switch t {
	case LogTypeDownload:
		return append(cols, Column{"파일명", 35}, Column{"섹션", 15}, Column{"IP", 18})
	case LogTypeModeration:
		return append(cols, Column{"대상", 30}, Column{"상세", 25}, Column{"IP", 18})
	default:
		return append(cols, Column{"페이지", 35}, Column{"IP", 18}, Column{"브라우저", 30})
	}
}

func (t LogType) row(l Log) []string {
	meta := metadataMap(l.Metadata)
	row := []string{
		l.CreatedAt.UTC().Format(ExportTimeLayout),
		displayUser(l),
		l.Email,
		l.Action.Label(),
	}

	switch t {
	case LogTypeDownload:
		return append(row,
			or(meta["fileName"]),
			or(meta["section"]),
			deref(l.IPAddress),
		)
	case LogTypeModeration:
		return append(row,
			or(meta["title"], meta["contentType"]),
			or(meta["section"], meta["reason"]),
			deref(l.IPAddress),
		)
	default:
		return append(row,
			deref(l.Path),
			deref(l.IPAddress),
			Browser(deref(l.UserAgent)),
		)
	}
}

// WriteWorkbook writes logs as a single-sheet xlsx workbook named after t,
// with a bold header row and fixed column widths.
func WriteWorkbook(w io.Writer, t LogType, logs []Log) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.SheetName()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	cols := t.Columns()
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Label
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, c.Width); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("header row: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return err
	}

	for i, l := range logs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := t.row(l)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	return f.Write(w)
}

// Browser reduces a user agent to a browser family. Unknown agents are
// truncated to 40 characters.
func Browser(ua string) string {
	switch {
	case ua == "" || ua == missing:
		return missing
	case strings.Contains(ua, "Edg"):
		return "Edge"
	case strings.Contains(ua, "Chrome"):
		return "Chrome"
	case strings.Contains(ua, "Firefox"):
		return "Firefox"
	case strings.Contains(ua, "Safari"):
		return "Safari"
	}

	if r := []rune(ua); len(r) > 40 {
		return string(r[:40])
	}
	return ua
}

func displayUser(l Log) string {
	if l.UserName != nil && *l.UserName != "" {
		return *l.UserName
	}
	local, _, _ := strings.Cut(l.Email, "@")
	if local == "" {
		return missing
	}
	return local
}

func metadataMap(raw json.RawMessage) map[string]any {
	m := make(map[string]any)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &m)
	}
	return m
}

func or(values ...any) string {
	for _, v := range values {
		if v == nil {
			continue
		}
		if s := fmt.Sprint(v); s != "" {
			return s
		}
	}
	return missing
}

func deref(s *string) string {
	if s == nil || *s == "" {
		return missing
	}
	return *s
}

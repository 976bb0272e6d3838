package gallery

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/JaimeStill/design-lab/pkg/query"
	"github.com/JaimeStill/design-lab/pkg/repository"
)

var projection = query.NewProjectionMap("public", "gallery_items", "g").
	Project("id", "ID").
	Project("section", "Section").
	Project("title", "Title").
	Project("description", "Description").
	Project("author", "Author").
	Project("date", "Date").
	Project("category", "Category").
	Project("thumbnail", "Thumbnail").
	Project("full_description", "FullDescription").
	Project("tags", "Tags").
	Project("attachments", "Attachments").
	Project("session", "Session")

var defaultSort = []query.SortField{
	{Field: "Date", Descending: true},
}

func scanItem(s repository.Scanner) (Item, error) {
	var (
		item        Item
		id          uuid.UUID
		thumbnail   sql.NullString
		full        sql.NullString
		tags        []byte
		attachments []byte
		session     sql.NullInt32
	)

	err := s.Scan(
		&id, &item.Section, &item.Title, &item.Description, &item.Author,
		&item.Date, &item.Category, &thumbnail, &full, &tags, &attachments, &session,
	)
	if err != nil {
		return item, err
	}

	item.ID = id.String()
	item.Thumbnail = thumbnail.String
	item.FullDescription = full.String
	item.Session = int(session.Int32)

	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &item.Tags); err != nil {
			return item, fmt.Errorf("decode tags: %w", err)
		}
	}
	if len(attachments) > 0 {
		if err := json.Unmarshal(attachments, &item.Attachments); err != nil {
			return item, fmt.Errorf("decode attachments: %w", err)
		}
	}

	return item, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(n int) sql.NullInt32 {
	return sql.NullInt32{Int32: int32(n), Valid: n != 0}
}

func jsonArray[T any](v []T) (string, error) {
	if v == nil {
		v = []T{}
	}
	b, err := json.Marshal(v)
	return string(b), err
}

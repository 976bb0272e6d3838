package accesslog

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/JaimeStill/design-lab/pkg/query"
	"github.com/JaimeStill/design-lab/pkg/repository"
)

var projection = query.NewProjectionMap("public", "access_logs", "a").
	Project("id", "ID").
	Project("email", "Email").
	Project("user_name", "UserName").
	Project("action", "Action").
	Project("path", "Path").
	Project("user_agent", "UserAgent").
	Project("ip_address", "IPAddress").
	Project("metadata", "Metadata").
	Project("created_at", "CreatedAt")

var defaultSort = []query.SortField{
	{Field: "CreatedAt", Descending: true},
}

func scanLog(s repository.Scanner) (Log, error) {
	var (
		l         Log
		id        uuid.UUID
		userName  sql.NullString
		path      sql.NullString
		userAgent sql.NullString
		ip        sql.NullString
		metadata  []byte
	)

	err := s.Scan(
		&id, &l.Email, &userName, &l.Action, &path,
		&userAgent, &ip, &metadata, &l.CreatedAt,
	)
	if err != nil {
		return l, err
	}

	l.ID = id.String()
	l.UserName = ptr(userName)
	l.Path = ptr(path)
	l.UserAgent = ptr(userAgent)
	l.IPAddress = ptr(ip)
	l.CreatedAt = l.CreatedAt.UTC()
	if len(metadata) > 0 {
		l.Metadata = json.RawMessage(metadata)
	}

	return l, nil
}

func ptr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func encodeMetadata(m map[string]any) (sql.NullString, error) {
	if len(m) == 0 {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

// apply adds the filter conditions to b.
func (f Filters) apply(b *query.Builder) *query.Builder {
	if len(f.Actions) > 0 {
		actions := make([]any, len(f.Actions))
		for i, a := range f.Actions {
			actions[i] = string(a)
		}
		b.WhereIn("Action", actions)
	}
	b.WhereContains("Email", f.Email)
	if f.From != nil {
		b.WhereAtLeast("CreatedAt", *f.From)
	}
	if f.To != nil {
		b.WhereBefore("CreatedAt", *f.To)
	}
	return b
}

package accesslog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/design-lab/internal/auth"
	"github.com/JaimeStill/design-lab/pkg/pagination"
	"github.com/JaimeStill/design-lab/pkg/query"
	"github.com/JaimeStill/design-lab/pkg/repository"
)

// System stores and queries access logs.
type System interface {
	Persistent() bool
	Record(ctx context.Context, e Entry) error
	List(ctx context.Context, page pagination.PageRequest, f Filters) (*pagination.PageResult[Log], error)
	Online(ctx context.Context) (*Online, error)
	Export(ctx context.Context, f Filters) ([]Log, error)
	Audit(ctx context.Context, u auth.User, action, path string, metadata map[string]any)
}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

// New creates the access log system. Without a database nothing is stored
// and every listing is empty.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "accesslog"),
		now:    time.Now,
	}
}

func (r *repo) Persistent() bool {
	return r.db != nil
}

func (r *repo) Record(ctx context.Context, e Entry) error {
	if r.db == nil {
		r.logger.Debug("access log skipped", "action", e.Action, "email", e.Email)
		return nil
	}

	metadata, err := encodeMetadata(e.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	if e.IPAddress == "" {
		e.IPAddress = "unknown"
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO access_logs (id, email, user_name, action, path, user_agent, ip_address, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.New(), e.Email, nullString(e.UserName), string(e.Action),
		nullString(e.Path), nullString(e.UserAgent), e.IPAddress, metadata,
	)
	if err != nil {
		return fmt.Errorf("insert access log: %w", err)
	}
	return nil
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, f Filters) (*pagination.PageResult[Log], error) {
	if r.db == nil {
		result := pagination.NewPageResult[Log](nil, 0, page.Page, page.PageSize)
		return &result, nil
	}

	var total int
	cq, cargs := f.apply(query.NewBuilder(projection)).
		WhereSearch(page.Search, "Email", "UserName", "Path").
		BuildCount()
	if err := r.db.QueryRowContext(ctx, cq, cargs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count access logs: %w", err)
	}

	q, args := f.apply(query.NewBuilder(projection, defaultSort...)).
		WhereSearch(page.Search, "Email", "UserName", "Path").
		OrderByFields(page.Sort).
		BuildPage(page.Page, page.PageSize)

	logs, err := repository.QueryMany(ctx, r.db, q, args, scanLog)
	if err != nil {
		return nil, fmt.Errorf("query access logs: %w", err)
	}

	result := pagination.NewPageResult(logs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Online(ctx context.Context) (*Online, error) {
	online := &Online{
		OnlineUsers: make([]OnlineUser, 0),
		Threshold:   OnlineThreshold.Milliseconds(),
	}
	if r.db == nil {
		return online, nil
	}

	since := r.now().UTC().Add(-OnlineThreshold)
	q, args := query.NewBuilder(projection, defaultSort...).
		WhereAtLeast("CreatedAt", since).
		Build()

	logs, err := repository.QueryMany(ctx, r.db, q, args, scanLog)
	if err != nil {
		return nil, fmt.Errorf("query online users: %w", err)
	}

	online.OnlineUsers = latestPerUser(logs)
	online.TotalOnline = len(online.OnlineUsers)
	return online, nil
}

func (r *repo) Export(ctx context.Context, f Filters) ([]Log, error) {
	if r.db == nil {
		return make([]Log, 0), nil
	}

	q, args := f.apply(query.NewBuilder(projection, defaultSort...)).
		BuildLimit(MaxExportRows)

	logs, err := repository.QueryMany(ctx, r.db, q, args, scanLog)
	if err != nil {
		return nil, fmt.Errorf("export access logs: %w", err)
	}
	return logs, nil
}

// Audit records a server-side event. Failures are logged and never surface
// to the caller.
func (r *repo) Audit(ctx context.Context, u auth.User, action, path string, metadata map[string]any) {
	client := ClientFrom(ctx)
	email := u.Email
	if email == "" {
		email = u.ID
	}

	err := r.Record(ctx, Entry{
		Email:     email,
		UserName:  u.Name,
		Action:    Action(action),
		Path:      path,
		UserAgent: client.UserAgent,
		IPAddress: client.IPAddress,
		Metadata:  metadata,
	})
	if err != nil {
		r.logger.Error("audit failed", "action", action, "email", email, "error", err)
	}
}

// latestPerUser keeps the first log per email from logs ordered newest first.
func latestPerUser(logs []Log) []OnlineUser {
	seen := make(map[string]bool, len(logs))
	users := make([]OnlineUser, 0)

	for _, l := range logs {
		if seen[l.Email] {
			continue
		}
		seen[l.Email] = true
		users = append(users, OnlineUser{
			Email:      l.Email,
			UserName:   l.UserName,
			LastAction: l.Action,
			LastPath:   l.Path,
			LastSeen:   l.CreatedAt.UTC().Format(time.RFC3339Nano),
			IPAddress:  l.IPAddress,
		})
	}
	return users
}

package accesslog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/JaimeStill/design-lab/internal/auth"
	"github.com/JaimeStill/design-lab/pkg/handlers"
	"github.com/JaimeStill/design-lab/pkg/pagination"
	"github.com/JaimeStill/design-lab/pkg/routes"
)

// Result is the envelope of the record endpoint.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// RecordRequest is the body of a client activity report.
type RecordRequest struct {
	Action   Action         `json:"action"`
	Path     string         `json:"path,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type Handler struct {
	sys        System
	policy     *auth.Policy
	pagination pagination.Config
	logger     *slog.Logger
	now        func() time.Time
}

func NewHandler(sys System, policy *auth.Policy, cfg pagination.Config, logger *slog.Logger) *Handler {
	return &Handler{
		sys:        sys,
		policy:     policy,
		pagination: cfg,
		logger:     logger,
		now:        time.Now,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Description: "User activity and moderation logs",
		Children: []routes.Group{
			{
				Prefix: "/data",
				Tags:   []string{"Access Logs"},
				Routes: []routes.Route{
					{Method: "POST", Pattern: "/access-log", Handler: h.Record, OpenAPI: Spec.Record},
				},
			},
			{
				Prefix: "/admin/access-logs",
				Tags:   []string{"Admin"},
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
					{Method: "GET", Pattern: "/export", Handler: h.Export, OpenAPI: Spec.Export},
				},
			},
		},
		Schemas: Spec.Schemas(),
	}
}

func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFrom(r.Context())
	if !ok || u.Email == "" {
		handlers.RespondJSON(w, http.StatusUnauthorized, Result{Message: "Unauthorized"})
		return
	}

	var req RecordRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRecordSize)).Decode(&req); err != nil {
		handlers.RespondJSON(w, http.StatusBadRequest, Result{Message: "Invalid body"})
		return
	}
	if !req.Action.Valid() {
		handlers.RespondJSON(w, http.StatusBadRequest, Result{Message: ErrInvalidAction.Error()})
		return
	}

	err := h.sys.Record(r.Context(), Entry{
		Email:     u.Email,
		UserName:  u.Name,
		Action:    req.Action,
		Path:      req.Path,
		UserAgent: r.UserAgent(),
		IPAddress: ClientIP(r),
		Metadata:  req.Metadata,
	})
	if err != nil {
		h.logger.Error("record access log failed", "action", req.Action, "error", err)
		handlers.RespondJSON(w, http.StatusInternalServerError, Result{Message: "Internal error"})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Result{OK: true})
}

// List returns a filtered page of logs, or online users when mode=online.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.RequireOperator(w, r, h.policy, h.logger); !ok {
		return
	}

	values := r.URL.Query()
	if values.Get("mode") == "online" {
		handlers.Guard(w, h.logger, "AccessLogsFetchFailed", func() (*Online, error) {
			return h.sys.Online(r.Context())
		})
		return
	}

	f, err := filtersFromQuery(values)
	if err != nil {
		handlers.RespondFailure(w, h.logger, http.StatusBadRequest, "BadRequest", err.Error())
		return
	}

	page := pagination.PageRequestFromQuery(values, h.pagination)
	handlers.Guard(w, h.logger, "AccessLogsFetchFailed", func() (*pagination.PageResult[Log], error) {
		return h.sys.List(r.Context(), page, f)
	})
}

// Export sends the logs of one log type as an xlsx attachment.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.RequireOperator(w, r, h.policy, h.logger); !ok {
		return
	}

	values := r.URL.Query()
	logType := ParseLogType(values.Get("log_type"))

	f, err := dateFilters(values)
	if err != nil {
		handlers.RespondFailure(w, h.logger, http.StatusBadRequest, "BadRequest", err.Error())
		return
	}
	f.Actions = logType.Actions()

	logs, err := h.sys.Export(r.Context(), f)
	if err != nil {
		handlers.RespondFailure(w, h.logger, http.StatusInternalServerError, "ExportFailed", err.Error())
		return
	}

	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, logType, logs); err != nil {
		handlers.RespondFailure(w, h.logger, http.StatusInternalServerError, "ExportFailed", err.Error())
		return
	}

	name := url.PathEscape(logType.Filename(h.now()))
	w.Header().Set("Content-Type", ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"; filename*=UTF-8''%s", name, name))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())

	h.logger.Info("access logs exported", "log_type", logType, "rows", len(logs))
}

// filtersFromQuery reads action, actions, email, date_from and date_to.
// A comma-separated actions list takes priority over a single action.
func filtersFromQuery(values url.Values) (Filters, error) {
	f, err := dateFilters(values)
	if err != nil {
		return f, err
	}

	if list := values.Get("actions"); list != "" {
		for a := range strings.SplitSeq(list, ",") {
			if a = strings.TrimSpace(a); a != "" {
				f.Actions = append(f.Actions, Action(a))
			}
		}
	} else if a := strings.TrimSpace(values.Get("action")); a != "" {
		f.Actions = []Action{Action(a)}
	}

	if email := strings.TrimSpace(values.Get("email")); email != "" {
		f.Email = &email
	}
	return f, nil
}

func dateFilters(values url.Values) (Filters, error) {
	var (
		f   Filters
		err error
	)
	if f.From, err = ParseBound(values.Get("date_from"), false); err != nil {
		return f, fmt.Errorf("date_from: %w", err)
	}
	if f.To, err = ParseBound(values.Get("date_to"), true); err != nil {
		return f, fmt.Errorf("date_to: %w", err)
	}
	return f, nil
}

package accesslog

import "github.com/JaimeStill/design-lab/pkg/openapi"

type spec struct {
	Record *openapi.Operation
	List   *openapi.Operation
	Export *openapi.Operation
}

var Spec = spec{
	Record: &openapi.Operation{
		Summary:     "Record activity",
		Description: "Records a page_view, login, logout, download or click event for the signed-in user",
		RequestBody: openapi.RequestBodyJSON("AccessLogRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Recorded", "AccessLogResult"),
			400: openapi.ResponseJSON("Invalid action", "AccessLogResult"),
			401: openapi.ResponseJSON("No session email", "AccessLogResult"),
			500: openapi.ResponseJSON("Internal error", "AccessLogResult"),
		},
	},
	List: &openapi.Operation{
		Summary:     "List access logs",
		Description: "Returns a page of logs newest first, or users active in the last five minutes when mode=online. Operator only",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("mode", "string", "online for presence instead of a page", false),
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("size", "integer", "Alias of page_size", false),
			openapi.QueryParam("search", "string", "Matches email, user name or path", false),
			openapi.QueryParam("sort", "string", "Comma-separated fields, - prefix for descending", false),
			openapi.QueryParam("action", "string", "Single action filter", false),
			openapi.QueryParam("actions", "string", "Comma-separated actions, overrides action", false),
			openapi.QueryParam("email", "string", "Email substring", false),
			openapi.QueryParam("date_from", "string", "YYYY-MM-DD or RFC 3339 lower bound", false),
			openapi.QueryParam("date_to", "string", "YYYY-MM-DD or RFC 3339 upper bound, inclusive", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Access log page or online users", "AccessLogPage"),
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
			403: openapi.ResponseRef("Forbidden"),
			500: openapi.ResponseRef("ServerError"),
		},
	},
	Export: &openapi.Operation{
		Summary:     "Export access logs",
		Description: "Downloads up to 10000 logs of one type as an xlsx workbook. Operator only",
		Parameters: []*openapi.Parameter{
			{
				Name:   "log_type",
				In:     "query",
				Schema: &openapi.Schema{Type: "string", Enum: []string{"access", "download", "moderation"}},
			},
			openapi.QueryParam("date_from", "string", "YYYY-MM-DD lower bound", false),
			openapi.QueryParam("date_to", "string", "YYYY-MM-DD upper bound, inclusive", false),
		},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "xlsx attachment",
				Content: map[string]*openapi.MediaType{
					ContentType: {Schema: &openapi.Schema{Type: "string", Format: "binary"}},
				},
			},
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
			403: openapi.ResponseRef("Forbidden"),
			500: openapi.ResponseRef("ServerError"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"AccessLog": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":        {Type: "string", Format: "uuid"},
				"email":     {Type: "string"},
				"userName":  {Type: "string"},
				"action":    {Type: "string"},
				"path":      {Type: "string"},
				"userAgent": {Type: "string"},
				"ipAddress": {Type: "string"},
				"metadata":  {Type: "object"},
				"createdAt": {Type: "string", Format: "date-time"},
			},
		},
		"AccessLogPage": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("AccessLog")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
		"AccessLogRequest": {
			Type:     "object",
			Required: []string{"action"},
			Properties: map[string]*openapi.Schema{
				"action": {
					Type: "string",
					Enum: []string{"page_view", "login", "logout", "download", "click"},
				},
				"path":     {Type: "string"},
				"metadata": {Type: "object"},
			},
		},
		"AccessLogResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"ok":      {Type: "boolean"},
				"message": {Type: "string"},
			},
		},
	}
}

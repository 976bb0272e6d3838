package home

import "github.com/JaimeStill/design-lab/pkg/openapi"

type spec struct {
	Content      *openapi.Operation
	Banner       *openapi.Operation
	AdminContent *openapi.Operation
	Create       *openapi.Operation
	Delete       *openapi.Operation
}

var Spec = spec{
	Content: &openapi.Operation{
		Summary:     "Home content",
		Description: "Returns active banners, notices and active PlayDay guides",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Home content", "HomeContent"),
			500: openapi.ResponseRef("ServerError"),
		},
	},
	Banner: &openapi.Operation{
		Summary: "Get banner",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Banner UUID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Banner", "Banner"),
			404: openapi.ResponseRef("NotFound"),
			500: openapi.ResponseRef("ServerError"),
		},
	},
	AdminContent: &openapi.Operation{
		Summary:     "All home content",
		Description: "Returns every banner, notice and guide including inactive ones. Operator only",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Home content", "HomeContent"),
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
			403: openapi.ResponseRef("Forbidden"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create home content",
		Description: "Creates a banner, notice or PlayDay guide selected by contentType. Operator only",
		RequestBody: openapi.RequestBodyJSON("HomeContentRequest", true),
		Responses: map[int]*openapi.Response{
			201: {Description: "Created: {ok, item}"},
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
			403: openapi.ResponseRef("Forbidden"),
			500: openapi.ResponseRef("ServerError"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete home content",
		Description: "Deletes the item named by id and contentType. Operator only",
		RequestBody: openapi.RequestBodyJSON("HomeContentRequest", true),
		Responses: map[int]*openapi.Response{
			200: {Description: "Deleted: {ok: true}"},
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
			403: openapi.ResponseRef("Forbidden"),
			404: openapi.ResponseRef("NotFound"),
			500: openapi.ResponseRef("ServerError"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Banner": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"title":       {Type: "string"},
				"description": {Type: "string"},
				"content":     {Type: "string"},
				"href":        {Type: "string"},
				"isActive":    {Type: "boolean"},
				"sortOrder":   {Type: "integer"},
			},
		},
		"PlaydayGuide": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"title":       {Type: "string"},
				"description": {Type: "string"},
				"isActive":    {Type: "boolean"},
				"sortOrder":   {Type: "integer"},
			},
		},
		"HomeContent": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"banners":       {Type: "array", Items: openapi.SchemaRef("Banner")},
				"notices":       {Type: "array", Items: openapi.SchemaRef("Notice")},
				"playdayGuides": {Type: "array", Items: openapi.SchemaRef("PlaydayGuide")},
			},
		},
		"HomeContentRequest": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"contentType": {Type: "string", Enum: []string{"banner", "notice", "playday-guide"}},
				"id":          {Type: "string", Description: "Required for delete"},
				"title":       {Type: "string"},
				"description": {Type: "string"},
				"content":     {Type: "string"},
				"href":        {Type: "string"},
				"badge":       {Type: "string"},
				"badgeColor":  {Type: "string"},
			},
			Required: []string{"contentType"},
		},
	}
}

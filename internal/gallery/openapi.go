package gallery

import "github.com/JaimeStill/design-lab/pkg/openapi"

type spec struct {
	Activity     *openapi.Operation
	Marquee      *openapi.Operation
	Playday      *openapi.Operation
	Playbook     *openapi.Operation
	Create       *openapi.Operation
	Delete       *openapi.Operation
	AdminContent *openapi.Operation
}

var Spec = spec{
	Activity: &openapi.Operation{
		Summary:     "ACE community feed",
		Description: "Returns the activity gallery, newest first",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArray("Activity items", "GalleryItem"),
			500: openapi.ResponseRef("ServerError"),
		},
	},
	Marquee: &openapi.Operation{
		Summary:     "Marquee showcase",
		Description: "Returns the top row (PlayDay, usecase, HAI, Teams, interview) and bottom row (trend, prompt, activity)",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Marquee rows", "Marquee"),
			500: openapi.ResponseRef("ServerError"),
		},
	},
	Playday: &openapi.Operation{
		Summary:     "PlayDay gallery",
		Description: "Returns the PlayDay gallery, newest first",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArray("PlayDay items", "GalleryItem"),
			500: openapi.ResponseRef("ServerError"),
		},
	},
	Playbook: &openapi.Operation{
		Summary:     "Playbook",
		Description: "Returns one Playbook category, or every category keyed by name when category=all",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("category", "string", "all, usecase, trend, prompt, hai, teams or interview (default usecase)", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArray("Playbook items", "GalleryItem"),
			500: openapi.ResponseRef("ServerError"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create post",
		Description: "Creates a gallery post. PlayDay and activity require the community role; Playbook requires operator",
		RequestBody: openapi.RequestBodyJSON("CreatePostCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created post", "GalleryItem"),
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
			403: openapi.ResponseRef("Forbidden"),
			422: {Description: "Missing section, category or title"},
			500: openapi.ResponseRef("ServerError"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete post",
		Description: "Deletes a post. Allowed for its author or an operator",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Post UUID"),
		},
		Responses: map[int]*openapi.Response{
			200: {Description: "Post deleted"},
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
			403: openapi.ResponseRef("Forbidden"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	AdminContent: &openapi.Operation{
		Summary:     "All gallery content",
		Description: "Returns every gallery item labelled with its section. Operator only",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArray("Labelled items", "AdminItem"),
			401: openapi.ResponseRef("Unauthorized"),
			403: openapi.ResponseRef("Forbidden"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	attachment := &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"name": {Type: "string"},
			"url":  {Type: "string"},
			"size": {Type: "string", Example: "2.5MB"},
			"type": {Type: "string"},
		},
	}

	item := map[string]*openapi.Schema{
		"id":              {Type: "string", Format: "uuid"},
		"title":           {Type: "string"},
		"description":     {Type: "string"},
		"author":          {Type: "string"},
		"date":            {Type: "string", Example: "2024.03.15"},
		"category":        {Type: "string"},
		"thumbnail":       {Type: "string"},
		"fullDescription": {Type: "string"},
		"tags":            {Type: "array", Items: &openapi.Schema{Type: "string"}},
		"attachments":     {Type: "array", Items: attachment},
		"session":         {Type: "integer"},
	}

	admin := map[string]*openapi.Schema{"section": {Type: "string", Example: "PlayDay"}}
	for k, v := range item {
		admin[k] = v
	}

	return map[string]*openapi.Schema{
		"GalleryItem": {
			Type:       "object",
			Properties: item,
			Required:   []string{"title", "description", "author", "date", "category"},
		},
		"AdminItem": {
			Type:       "object",
			Properties: admin,
		},
		"Marquee": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"topRow":    {Type: "array", Items: openapi.SchemaRef("GalleryItem")},
				"bottomRow": {Type: "array", Items: openapi.SchemaRef("GalleryItem")},
			},
		},
		"CreatePostCommand": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"section":     {Type: "string", Enum: []string{"playday", "activity", "playbook", "playbook_usecase", "playbook_trend", "playbook_prompt", "playbook_hai", "playbook_teams", "playbook_interview"}},
				"category":    {Type: "string"},
				"title":       {Type: "string"},
				"description": {Type: "string"},
				"tags":        {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"thumbnail":   {Type: "string"},
				"attachments": {Type: "array", Items: attachment},
			},
			Required: []string{"section", "category", "title"},
		},
	}
}

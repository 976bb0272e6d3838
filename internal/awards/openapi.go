package awards

import "github.com/JaimeStill/design-lab/pkg/openapi"

// Schemas documents the award shapes.
func Schemas() map[string]*openapi.Schema {
	categories := make([]string, len(Categories))
	for i, c := range Categories {
		categories[i] = string(c)
	}

	return map[string]*openapi.Schema{
		"Award": {
			Type:     "object",
			Required: []string{"id", "title", "studio", "thumbnail", "date", "points", "category"},
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string"},
				"title":       {Type: "string"},
				"studio":      {Type: "string"},
				"thumbnail":   {Type: "string", Format: "uri"},
				"date":        {Type: "string"},
				"points":      {Type: "number"},
				"category":    {Type: "string", Enum: categories},
				"description": {Type: "string"},
				"tags":        {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
		"FilterOption": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"value": {Type: "string"},
				"label": {Type: "string"},
			},
		},
	}
}

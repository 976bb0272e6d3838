package openapi

// NewComponents returns the shared schemas and responses used across the API.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Schema{
					"page":      {Type: "integer", Description: "1-based page number", Example: 1},
					"page_size": {Type: "integer", Description: "Items per page", Example: 20},
					"search":    {Type: "string", Description: "Case-insensitive search term"},
				},
			},
			"Failure": {
				Type:     "object",
				Required: []string{"error"},
				Properties: map[string]*Schema{
					"error":   {Type: "string", Description: "Machine readable error code"},
					"message": {Type: "string", Description: "Human readable error detail"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest": {
				Description: "Invalid request",
				Content: map[string]*MediaType{
					"application/json": {Schema: SchemaRef("Failure")},
				},
			},
			"Unauthorized": {
				Description: "No valid session",
				Content: map[string]*MediaType{
					"application/json": {Schema: SchemaRef("Failure")},
				},
			},
			"Forbidden": {
				Description: "Session lacks the required role",
				Content: map[string]*MediaType{
					"application/json": {Schema: SchemaRef("Failure")},
				},
			},
			"NotFound": {
				Description: "Resource not found",
				Content: map[string]*MediaType{
					"application/json": {Schema: SchemaRef("Failure")},
				},
			},
			"Conflict": {
				Description: "Resource conflict",
				Content: map[string]*MediaType{
					"application/json": {Schema: SchemaRef("Failure")},
				},
			},
			"ServerError": {
				Description: "Content could not be fetched",
				Content: map[string]*MediaType{
					"application/json": {Schema: SchemaRef("Failure")},
				},
			},
		},
	}
}

// AddSchemas merges schemas into the components, replacing same-named entries.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

// AddResponses merges responses into the components, replacing same-named entries.
func (c *Components) AddResponses(responses map[string]*Response) {
	for name, resp := range responses {
		c.Responses[name] = resp
	}
}

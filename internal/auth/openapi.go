package auth

import "github.com/JaimeStill/design-lab/pkg/openapi"

type spec struct {
	Logout       *openapi.Operation
	Login        *openapi.Operation
	Roles        *openapi.Operation
	ProviderGet  *openapi.Operation
	ProviderPost *openapi.Operation
}

var Spec = spec{
	Logout: &openapi.Operation{
		Summary:     "Log out",
		Description: "Clears the session cookie and redirects to the site root",
		Responses: map[int]*openapi.Response{
			302: {Description: "Redirect to the site root"},
		},
	},
	Login: &openapi.Operation{
		Summary:     "Development login",
		Description: "Issues a session for a development user. Available only when dev login is enabled",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("user", "string", "Employee id (default EMP001)", false),
			openapi.QueryParam("next", "string", "Same-origin path to redirect to (default /playground)", false),
		},
		Responses: map[int]*openapi.Response{
			302: {Description: "Redirect to next"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Roles: &openapi.Operation{
		Summary:     "Session roles",
		Description: "Returns the roles held by the session user; empty when anonymous",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Roles", "RolesResponse"),
		},
	},
	ProviderGet: &openapi.Operation{
		Summary:     "Identity provider (GET)",
		Description: "Delegates session, providers and csrf actions to the identity provider",
		Parameters: []*openapi.Parameter{
			{Name: "nextauth", In: "path", Required: true, Description: "Provider action path", Schema: &openapi.Schema{Type: "string"}},
		},
		Responses: map[int]*openapi.Response{
			200: {Description: "Provider response"},
			404: openapi.ResponseRef("NotFound"),
			500: openapi.ResponseRef("ServerError"),
		},
	},
	ProviderPost: &openapi.Operation{
		Summary:     "Identity provider (POST)",
		Description: "Delegates the signout action to the identity provider",
		Parameters: []*openapi.Parameter{
			{Name: "nextauth", In: "path", Required: true, Description: "Provider action path", Schema: &openapi.Schema{Type: "string"}},
		},
		Responses: map[int]*openapi.Response{
			200: {Description: "Provider response"},
			403: openapi.ResponseRef("Forbidden"),
			404: openapi.ResponseRef("NotFound"),
			500: openapi.ResponseRef("ServerError"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"RolesResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"roles": {
					Type:  "array",
					Items: &openapi.Schema{Type: "string", Enum: []string{"employee", "community", "operator"}},
				},
			},
		},
	}
}

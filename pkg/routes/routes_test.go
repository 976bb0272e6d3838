package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/design-lab/pkg/openapi"
	"github.com/JaimeStill/design-lab/pkg/routes"
)

func write(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func dataGroup() routes.Group {
	return routes.Group{
		Prefix: "/data",
		Tags:   []string{"Data"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/notices", Handler: write("notices"), OpenAPI: &openapi.Operation{Summary: "List notices"}},
			{Method: "POST", Pattern: "/posts", Handler: write("create"), OpenAPI: &openapi.Operation{Summary: "Create post", Tags: []string{"Posts"}}},
			{Method: "DELETE", Pattern: "/posts/{id}", Handler: write("delete"), OpenAPI: &openapi.Operation{Summary: "Delete post"}},
			{Method: "GET", Pattern: "/hidden", Handler: write("hidden")},
		},
		Children: []routes.Group{
			{
				Prefix: "/admin",
				Tags:   []string{"Admin"},
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/content", Handler: write("content"), OpenAPI: &openapi.Operation{Summary: "All content"}},
				},
			},
		},
		Schemas: map[string]*openapi.Schema{
			"Notice": {Type: "object", Properties: map[string]*openapi.Schema{"title": {Type: "string"}}},
		},
	}
}

func TestGroup_AddToSpec(t *testing.T) {
	spec := openapi.NewSpec("Design Lab API", "test")
	group := dataGroup()
	group.AddToSpec("/api", spec)

	if op := spec.Paths["/api/data/notices"]; op == nil || op.Get == nil {
		t.Fatal("GET /api/data/notices not documented")
	}
	if tags := spec.Paths["/api/data/notices"].Get.Tags; len(tags) != 1 || tags[0] != "Data" {
		t.Errorf("inherited tags = %v, want [Data]", tags)
	}
	if tags := spec.Paths["/api/data/posts"].Post.Tags; tags[0] != "Posts" {
		t.Errorf("explicit tags = %v, want [Posts]", tags)
	}
	if spec.Paths["/api/data/posts/{id}"].Delete == nil {
		t.Error("DELETE operation missing")
	}
	if spec.Paths["/api/data/hidden"] != nil {
		t.Error("route without OpenAPI should not be documented")
	}
	if spec.Paths["/api/data/admin/content"] == nil {
		t.Error("child group path missing")
	}
	if spec.Components.Schemas["Notice"] == nil {
		t.Error("group schema not registered")
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	spec := openapi.NewSpec("Design Lab API", "test")

	routes.Register(mux, "/api", spec, dataGroup())

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/data/notices", "notices"},
		{http.MethodPost, "/data/posts", "create"},
		{http.MethodDelete, "/data/posts/abc", "delete"},
		{http.MethodGet, "/data/hidden", "hidden"},
		{http.MethodGet, "/data/admin/content", "content"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Body.String() != tt.want {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.want)
			}
		})
	}

	if spec.Paths["/api/data/notices"] == nil {
		t.Error("spec paths should carry the base path")
	}
}

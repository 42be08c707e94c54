package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/hello-service/internal/http/v1/hello"
)

const (
	apiTitle = "Hello Service API"
	docsPath = "/api-docs"
)

// APIConfig returns the huma configuration for the service. Response bodies
// carry only their documented fields: the $schema link hook is removed.
// With docs disabled no OpenAPI, schema or docs routes are mounted.
func APIConfig(version string, docs bool) huma.Config {
	cfg := huma.DefaultConfig(apiTitle, version)
	cfg.CreateHooks = nil
	if docs {
		cfg.DocsPath = docsPath
		return cfg
	}
	cfg.OpenAPIPath = ""
	cfg.DocsPath = ""
	cfg.SchemasPath = ""
	return cfg
}

// DocsPath is where the docs UI lives when enabled.
func DocsPath() string {
	return docsPath
}

// Register wires all huma operations into the provided API.
func Register(api huma.API) {
	hello.Register(api)
}

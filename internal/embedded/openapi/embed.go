// Package openapi embeds the OpenAPI 3.0 document and the Swagger UI page
// for the menumap HTTP API. The YAML file is the source of truth; the JSON
// rendering is derived from it on first use.
package openapi

import (
	_ "embed"
	"sync"

	"github.com/goccy/go-yaml"
)

// SpecYAML contains the OpenAPI 3.0 specification in YAML format.
// Served at: GET /openapi.yaml
//
//go:embed openapi.yaml
var SpecYAML []byte

// DocsHTML is the Swagger UI page. It loads openapi.json relative to its own URL.
// Served at: GET /docs
//
//go:embed docs.html
var DocsHTML []byte

var specJSON = sync.OnceValues(func() ([]byte, error) {
	return yaml.YAMLToJSON(SpecYAML)
})

// SpecJSON returns the OpenAPI specification converted to JSON.
// Served at: GET /openapi.json
func SpecJSON() ([]byte, error) {
	return specJSON()
}

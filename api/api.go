// Package api embeds the service's OpenAPI description.
package api

import _ "embed"

// OpenAPISpec is the raw OpenAPI 3.0 document for the HTTP API.
//
//go:embed openapi.yml
var OpenAPISpec []byte

package api

import _ "embed"

// OpenAPISpec — встроенная OpenAPI-спецификация, отдаётся по /swagger/openapi.json.
//
//go:embed openapi.json
var OpenAPISpec []byte

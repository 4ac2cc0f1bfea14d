// Package gen holds the server code generated from spec/openapi.yaml.
// Regenerate with `go generate ./internal/handler/gen` after editing the document.
package gen

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.5.1 -config oapi-codegen.yaml ../../../spec/openapi.yaml

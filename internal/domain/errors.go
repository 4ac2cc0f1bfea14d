package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing title, return date before departure date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUpstream is returned when a third-party search provider is unreachable,
// not configured, or answers with a non-success status.
// Handlers should map this to HTTP 502 Bad Gateway.
var ErrUpstream = errors.New("upstream error")

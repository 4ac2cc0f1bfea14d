package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/domain"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/handler/gen"
)

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "itinerary not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: unwrapMessage(err, domain.ErrValidation)}}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: message}}
}

// upstreamBody returns an ErrorResponse for a failed third-party provider call.
func upstreamBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "upstream_error", Message: unwrapMessage(err, domain.ErrUpstream)}}
}

// unwrapMessage extracts the human-readable part that follows the sentinel in
// a wrapped error chain.
// e.g. "service.ItineraryService.Update: validation error: title is required" → "title is required"
func unwrapMessage(err, sentinel error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 && len(msg) > i+len(marker) {
		return msg[i+len(marker):]
	}
	return sentinel.Error()
}

// StrictOptions returns the strict-server options used in production: malformed
// request bodies and unexpected handler errors are answered in the same JSON
// error envelope as every other failure.
func StrictOptions(logger *slog.Logger) gen.StrictHTTPServerOptions {
	return gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: RequestErrorHandler,
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		},
	}
}

// RequestErrorHandler answers a request that could not be decoded or whose
// parameters failed to bind with 400 and a JSON error body. It is used both
// for strict-server body decoding and for chi parameter binding.
func RequestErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, "bad_request", err.Error())
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}})
}

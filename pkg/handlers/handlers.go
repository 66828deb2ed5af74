// Package handlers provides HTTP response utilities for JSON APIs and HTML views.
// These stateless functions standardize response formatting across handlers.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs the error and writes a JSON error response.
// The response body contains {"error": "<error message>"}.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("handler error", "error", err, "status", status)
	RespondJSON(w, status, map[string]string{"error": err.Error()})
}

// RespondHTML writes an HTML fragment or document with the given status code.
func RespondHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

// Redirect sends a 303 See Other so that form submissions
// are followed by a GET regardless of the submitted verb.
func Redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

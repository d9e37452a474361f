package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookstore-backend/internal/catalog"
)

// envelope is the response shape used by every endpoint.
type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    interface{}         `json:"data,omitempty"`
	Error   string              `json:"error,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondData(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, envelope{Success: true, Message: message, Data: data})
}

// handleNotFound keeps unknown paths and malformed path IDs inside the JSON
// envelope instead of the mux's plain-text 404.
func handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, envelope{Success: false, Message: "Not found"})
}

// serviceMessages carries the per-endpoint wording for catalog errors.
type serviceMessages struct {
	invalid   string
	notFound  string
	forbidden string
	failure   string
}

// respondServiceError maps a catalog error onto the endpoint's status code
// and message.
func respondServiceError(w http.ResponseWriter, err error, msg serviceMessages) {
	var verr *catalog.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, envelope{
			Success: false, Message: msg.invalid, Errors: verr.Fields,
		})
	case errors.Is(err, catalog.ErrNotFound):
		writeJSON(w, http.StatusNotFound, envelope{
			Success: false, Message: msg.notFound, Error: err.Error(),
		})
	case errors.Is(err, catalog.ErrNotOwner):
		writeJSON(w, http.StatusForbidden, envelope{
			Success: false, Message: msg.forbidden, Error: err.Error(),
		})
	default:
		writeJSON(w, http.StatusInternalServerError, envelope{
			Success: false, Message: msg.failure, Error: err.Error(),
		})
	}
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/portfolio-api/internal/pkg/validate"
)

const (
	msgInvalidRequest = "Invalid request data"
	msgServerError    = "An error occurred while processing your request"
)

// Envelope is the generic response wrapper.
type Envelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    interface{}           `json:"data,omitempty"`
	Errors  []validate.FieldError `json:"errors,omitempty"`
}

// ContactData is the payload of a successful contact submission.
type ContactData struct {
	ID int64 `json:"id"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Envelope{Message: msg})
}

// NotFound and MethodNotAllowed keep chi's fallbacks in the JSON envelope.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/portfolio-api/internal/application/contact"
	"github.com/portfolio-api/internal/domain"
	"github.com/portfolio-api/internal/pkg/validate"
)

const maxContactBody = 1 << 20

// ContactHandler handles the contact-form endpoint.
type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler { return &ContactHandler{svc: svc} }

// Submit handles POST /api/contact. Only validation and persistence decide
// the response; the acknowledgement email runs after it.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)
	req, verr := decodeContact(r.Body)
	if verr != nil {
		writeJSON(w, http.StatusBadRequest, Envelope{Message: msgInvalidRequest, Errors: verr.Fields})
		return
	}

	m, err := h.svc.Submit(r.Context(), req)
	var ve *validate.Errors
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, Envelope{Message: msgInvalidRequest, Errors: ve.Fields})
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "contact submission failed", "err", err)
		writeError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "Contact message received and resume sent",
		Data:    ContactData{ID: m.ID},
	})
}

// contactFields fixes the order in which field errors are reported.
var contactFields = []string{"name", "email", "message"}

// decodeContact reads exactly one JSON object. Fields of the wrong JSON type
// are reported alongside validation failures of the remaining fields, so the
// caller sees every bad field at once.
func decodeContact(body io.Reader) (domain.ContactRequest, *validate.Errors) {
	var req domain.ContactRequest
	dec := json.NewDecoder(body)

	var raw map[string]json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return req, bodyError(err)
	}
	if raw == nil {
		return req, bodyError(nil)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return req, bodyError(err)
	}

	targets := map[string]*string{"name": &req.Name, "email": &req.Email, "message": &req.Message}
	badType := map[string]bool{}
	for _, f := range contactFields {
		if v, ok := raw[f]; ok {
			if err := json.Unmarshal(v, targets[f]); err != nil {
				badType[f] = true
			}
		}
	}

	var invalid *validate.Errors
	_ = errors.As(validate.Struct(req), &invalid)

	var out []validate.FieldError
	for _, f := range contactFields {
		if badType[f] {
			out = append(out, validate.FieldError{Field: f, Code: "invalid_type", Message: "Expected string"})
			continue
		}
		if invalid != nil {
			for _, fe := range invalid.Fields {
				if fe.Field == f {
					out = append(out, fe)
				}
			}
		}
	}
	if len(out) > 0 {
		return req, &validate.Errors{Fields: out}
	}
	return req, nil
}

func bodyError(err error) *validate.Errors {
	var sizeErr *http.MaxBytesError
	if errors.As(err, &sizeErr) {
		return validate.Field("body", "too_large", "Request body is too large")
	}
	return validate.Field("body", "invalid_json", "Request body must be a JSON object")
}

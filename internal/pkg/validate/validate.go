package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/portfolio-api/internal/domain"
)

// v is the package-level singleton validator. It is initialised once at
// package load time. Any custom type registrations must be made during init()
// before the first call to Struct.
var v = validator.New()

func init() {
	v.RegisterTagNameFunc(jsonName)
	if err := v.RegisterValidation("email_tld", emailTLD); err != nil {
		panic("validate: register email_tld: " + err.Error())
	}
}

// FieldError describes one field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Errors is the full set of field failures for one input. It wraps
// domain.ErrBadRequest.
type Errors struct {
	Fields []FieldError
}

func (e *Errors) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, fe := range e.Fields {
		msgs[i] = fmt.Sprintf("field '%s' failed '%s'", fe.Field, fe.Code)
	}
	return strings.Join(msgs, "; ")
}

func (e *Errors) Unwrap() error { return domain.ErrBadRequest }

// Has reports whether field failed with the given code.
func (e *Errors) Has(field, code string) bool {
	for _, fe := range e.Fields {
		if fe.Field == field && fe.Code == code {
			return true
		}
	}
	return false
}

// Struct validates the given struct using its validate tags. Every failing
// field is reported; within a field only the first failing tag is.
// Returns *Errors or nil.
func Struct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	out := &Errors{Fields: make([]FieldError, 0, len(ve))}
	for _, fe := range ve {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Code:    code(fe.Tag()),
			Message: message(fe.Field(), fe.Tag()),
		})
	}
	return out
}

// Field returns a single-field failure, used for input that cannot be decoded
// into the target struct at all.
func Field(field, code, msg string) *Errors {
	return &Errors{Fields: []FieldError{{Field: field, Code: code, Message: msg}}}
}

func code(tag string) string {
	switch tag {
	case "required":
		return "required"
	case "email", "email_tld":
		return "invalid_email"
	}
	return tag
}

func message(field, tag string) string {
	switch tag {
	case "required":
		return label(field) + " is required"
	case "email", "email_tld":
		return "Invalid email address"
	}
	return fmt.Sprintf("%s failed %s", label(field), tag)
}

func label(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// emailTLD requires local@domain.tld: one '@', no whitespace, and a domain
// made of at least two non-empty dot-separated labels.
func emailTLD(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return false
	}
	local, domainPart, ok := strings.Cut(s, "@")
	if !ok || local == "" || strings.Contains(domainPart, "@") {
		return false
	}
	labels := strings.Split(domainPart, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" {
			return false
		}
	}
	return true
}

package newsportal

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNewsNotFound       = errors.New("news not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

// ValidationError carries per-field messages of a rejected form.
type ValidationError struct {
	Fields map[string][]string
	// NonField holds messages that are not bound to a single field.
	NonField []string

	err error
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// Has reports whether field has at least one message.
func (e *ValidationError) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields)+len(e.NonField))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(e.Fields[f], "; ")))
	}
	parts = append(parts, e.NonField...)

	return "invalid form: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

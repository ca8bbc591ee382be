// Package validation contains the declarative wizard schemas. Each schema is
// a pure function from an input record to a validated record or an ordered
// list of field errors: no schema touches storage, and re-running a schema on
// the same input always yields the same result. The wizard re-runs the
// relevant schema on every field change and once more, authoritatively, at
// submit.
package validation

import (
	"fmt"
	"strings"
)

// FieldError ties one human-readable message to the input path that caused it.
type FieldError struct {
	Path    string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// FieldErrors is the ordered error list a schema produces. Order follows the
// schema's field declaration order so forms can render errors stably.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, fieldError := range e {
		messages = append(messages, fieldError.Error())
	}
	return strings.Join(messages, "; ")
}

// Has reports whether any error targets the given path.
func (e FieldErrors) Has(path string) bool {
	for _, fieldError := range e {
		if fieldError.Path == path {
			return true
		}
	}
	return false
}

// Message returns the first message recorded for the given path, or "".
func (e FieldErrors) Message(path string) string {
	for _, fieldError := range e {
		if fieldError.Path == path {
			return fieldError.Message
		}
	}
	return ""
}

package errs

import (
	"fmt"
	"strings"
)

// Error kinds. Every error returned by a use case is marked with exactly one
// of these so the transport layer can pick a status code.
var (
	ErrValidation = New("validation error")
	ErrNotFound   = New("not found")
	ErrConflict   = New("conflict")
	ErrInternal   = New("internal error")
)

// Sentinels stay unmarked; the kind is attached where they are returned.
// Marking a sentinel at declaration would give it the kind's identity and
// make every sentinel of that kind match every other under Is.
func Conflict(err error) error { return Mark(err, ErrConflict) }
func NotFound(err error) error { return Mark(err, ErrNotFound) }
func Internal(err error) error { return Mark(err, ErrInternal) }

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (f FieldError) Error() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, fe := range v {
		messages = append(messages, fe.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// Err returns nil when no field failed, otherwise the aggregate marked as ErrValidation.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return Mark(v, ErrValidation)
}

func Invalid(field, message string) error {
	return ValidationErrors{{Field: field, Message: message}}.Err()
}

// Fields extracts field-level details from a validation error, if any.
func Fields(err error) []FieldError {
	var v ValidationErrors
	if As(err, &v) {
		return v
	}
	return nil
}

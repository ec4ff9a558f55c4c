package validation

import (
	"errors"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Error enumerates every violated field of one input.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalidInput
}

// FieldMap flattens the error for JSON responses.
func (e *Error) FieldMap() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Message
	}
	return out
}

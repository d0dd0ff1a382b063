package pluslife

import (
	"errors"
	"fmt"
)

// ParseError means the input is not valid JSON text.
type ParseError struct {
	// Offset is the byte offset of a syntax error, when known.
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("parse error at byte offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ShapeError means the input is valid JSON but a field the export always
// carries is missing or has the wrong type.
type ShapeError struct {
	Field   string
	Problem string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected document shape at %s: %s", e.Field, e.Problem)
}

func missing(field string) *ShapeError {
	return &ShapeError{Field: field, Problem: "field is missing or null"}
}

func wrongType(field, want string, found interface{}) *ShapeError {
	return &ShapeError{Field: field, Problem: fmt.Sprintf("expected %s, found JSON %s", want, jsonKind(found))}
}

func jsonKind(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	}

	return fmt.Sprintf("%T", v)
}

// UnsupportedInputError means the file was not offered as JSON, so ingestion
// was never attempted.
type UnsupportedInputError struct {
	Name     string
	MIMEType string
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("unsupported input %q (type %q): expected a .json file", e.Name, e.MIMEType)
}

// Alert returns the fixed message shown to a user for an ingestion failure,
// or "" when err is not one of this package's input errors.
func Alert(err error) string {
	var unsupported *UnsupportedInputError
	var parseErr *ParseError
	var shapeErr *ShapeError

	switch {
	case errors.As(err, &unsupported):
		return "Please drop a valid JSON file."
	case errors.As(err, &parseErr), errors.As(err, &shapeErr):
		return "Error loading file. Please make sure it's a valid JSON file exported from the virus.sucks app."
	}

	return ""
}

package typemeta

import "fmt"

// AmbiguousFieldError is returned when more than one implemented interface
// declares a public field with the requested name.
type AmbiguousFieldError struct {
	Field string
	Type  string
}

func (e *AmbiguousFieldError) Error() string {
	return fmt.Sprintf("reference to field %v is ambiguous relative to %v; a matching field exists on two or more implemented interfaces", e.Field, e.Type)
}

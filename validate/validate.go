// Package validate assists in validating arguments. Failed checks produce
// an *ArgumentError whose message is built with fmt.Sprintf semantics; the
// message is only formatted when a check fails.
package validate

import "fmt"

// ArgumentError signals a violated argument precondition.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

// IsTrue checks that the argument condition is true, otherwise returning an
// *ArgumentError with the formatted message. Useful when validating an
// arbitrary boolean expression:
//
//	validate.IsTrue(i > 0, "the value must be greater than zero: %d", i)
func IsTrue(expression bool, message string, args ...interface{}) error {
	if expression {
		return nil
	}
	return &ArgumentError{Message: fmt.Sprintf(message, args...)}
}

// NotNil checks that the argument is not nil.
func NotNil(value interface{}, message string, args ...interface{}) error {
	return IsTrue(value != nil, message, args...)
}

// Package datebind converts between date or date-time values and their
// fixed-pattern string representation for a marshalling layer. Parsing is
// strict: any pattern mismatch or invalid calendar value is a *FormatError.
// Formatting an absent value yields an absent result.
package datebind

import (
	"fmt"
	"time"
)

const (
	//DatePattern is the wire pattern for calendar dates
	DatePattern = "yyyy-MM-dd"
	//DateTimePattern is the wire pattern for date-times at second precision
	DateTimePattern = "yyyy-MM-dd'T'HH:mm:ss"
)

var (
	dateLayout     = PatternToLayout(DatePattern)
	dateTimeLayout = PatternToLayout(DateTimePattern)
)

// FormatError signals text that does not match the required pattern or
// denotes an invalid calendar value.
type FormatError struct {
	Value   string
	Pattern string
	cause   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot parse %q with pattern %v: %v", e.Value, e.Pattern, e.cause)
}

func (e *FormatError) Unwrap() error {
	return e.cause
}

// ParseDate parses text strictly against the yyyy-MM-dd pattern, in UTC.
func ParseDate(text string) (time.Time, error) {
	ts, err := time.ParseInLocation(dateLayout, text, time.UTC)
	if err != nil {
		return time.Time{}, &FormatError{Value: text, Pattern: DatePattern, cause: err}
	}
	return ts, nil
}

// FormatDate returns the fixed-pattern string for ts, or nil for an absent
// value.
func FormatDate(ts *time.Time) *string {
	if ts == nil {
		return nil
	}
	value := ts.Format(dateLayout)
	return &value
}

// ParseDateTime parses text strictly against the yyyy-MM-dd'T'HH:mm:ss
// pattern, in UTC.
func ParseDateTime(text string) (time.Time, error) {
	ts, err := time.ParseInLocation(dateTimeLayout, text, time.UTC)
	if err != nil {
		return time.Time{}, &FormatError{Value: text, Pattern: DateTimePattern, cause: err}
	}
	return ts, nil
}

// FormatDateTime returns the fixed-pattern string for ts, or nil for an
// absent value.
func FormatDateTime(ts *time.Time) *string {
	if ts == nil {
		return nil
	}
	value := ts.Format(dateTimeLayout)
	return &value
}

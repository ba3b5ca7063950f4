package datebind

import (
	"time"

	"github.com/francoispqt/gojay"
)

// EncodeDateKey writes ts under key using the date pattern; an absent value
// writes nothing.
func EncodeDateKey(enc *gojay.Encoder, key string, ts *time.Time) {
	if value := FormatDate(ts); value != nil {
		enc.StringKey(key, *value)
	}
}

// EncodeDateTimeKey writes ts under key using the date-time pattern; an
// absent value writes nothing.
func EncodeDateTimeKey(enc *gojay.Encoder, key string, ts *time.Time) {
	if value := FormatDateTime(ts); value != nil {
		enc.StringKey(key, *value)
	}
}

// DecodeDate decodes the current value as a pattern-bound date into *into.
func DecodeDate(dec *gojay.Decoder, into *time.Time) error {
	var value string
	if err := dec.String(&value); err != nil {
		return err
	}
	ts, err := ParseDate(value)
	if err != nil {
		return err
	}
	*into = ts
	return nil
}

// DecodeDateTime decodes the current value as a pattern-bound date-time into
// *into.
func DecodeDateTime(dec *gojay.Decoder, into *time.Time) error {
	var value string
	if err := dec.String(&value); err != nil {
		return err
	}
	ts, err := ParseDateTime(value)
	if err != nil {
		return err
	}
	*into = ts
	return nil
}

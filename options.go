package typemeta

import "github.com/viant/tagly/format/text"

//Option represents a reflect bridge option
type Option func(o *options)

//Options represents bridge options
type Options []Option

type options struct {
	caseFormat text.CaseFormat
	tagNames   []string
}

//Apply applies options
func (o Options) Apply(opts *options) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(opts)
	}
}

func newOptions(opts []Option) *options {
	result := &options{}
	Options(opts).Apply(result)
	return result
}

// formatName re-cases a Go field name when a target case format was set.
func (o *options) formatName(name string) string {
	if !o.caseFormat.IsDefined() {
		return name
	}
	return text.CaseFormatUpperCamel.Format(name, o.caseFormat)
}

//WithCaseFormat re-cases descriptor field names from Go's UpperCamel
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *options) {
		o.caseFormat = caseFormat
	}
}

//WithTagNames adds fallback struct tag names consulted after the typemeta tag
func WithTagNames(names ...string) Option {
	return func(o *options) {
		o.tagNames = names
	}
}

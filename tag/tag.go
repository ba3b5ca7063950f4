// Package tag parses the typemeta struct tag controlling how Go struct
// fields are projected into type descriptors.
package tag

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/parsly"
)

const (
	TagName = "typemeta"
)

type Tag struct {
	Name string //overrides descriptor field name

	//Visibility overrides the default exported/unexported mapping,
	//one of: public, protected, package, private
	Visibility string

	CaseFormat string

	Ignore bool
}

func (t *Tag) update(key string, value string, strictMode bool) error {
	switch strings.ToLower(key) {
	case "name":
		t.Name = value
	case "visibility", "access":
		t.Visibility = value
	case "caseformat":
		t.CaseFormat = value
	case "ignore", "-", "transient":
		t.Ignore = true
	default:
		if strictMode {
			return fmt.Errorf("unknown key %v", key)
		}
	}
	return nil
}

// Parse decodes the typemeta tag, followed by any fallback tag names;
// unknown keys are only an error on the primary tag.
func Parse(tag reflect.StructTag, names ...string) (*Tag, error) {
	ret := &Tag{}
	names = append([]string{TagName}, names...)
	for i, name := range names {
		encoded := tag.Get(name)
		if encoded == "" {
			continue
		}
		if encoded == "-" {
			ret.Ignore = true
			continue
		}
		cursor := parsly.NewCursor("", []byte(encoded), 0)
		for cursor.Pos < len(cursor.Input) {
			key, value := matchPair(cursor)
			if key == "" && value == "" {
				break
			}
			if key == "" { //bare flag i.e. ignore
				key, value = value, ""
			}
			if err := ret.update(key, value, i == 0); err != nil {
				return nil, err
			}
		}
	}
	return ret, nil
}

func matchPair(cursor *parsly.Cursor) (string, string) {
	key := ""
	value := ""
	match := cursor.MatchAny(scopeBlockMatcher, commaTerminatorMatcher)
	switch match.Code {
	case scopeBlockToken:
		value = match.Text(cursor)
		value = value[1 : len(value)-1]
		match = cursor.MatchAny(commaTerminatorMatcher)
	case commaTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude ,
	default:
		if cursor.Pos < len(cursor.Input) {
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	if index := strings.Index(value, "="); index != -1 {
		key = value[:index]
		value = value[index+1:]
	}
	return key, value
}

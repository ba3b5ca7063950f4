package typemeta

import (
	"fmt"
	"reflect"

	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
	"github.com/vintecdyne/typemeta/tag"
)

// TypeOf builds a type descriptor for the dynamic type of v.
func TypeOf(v interface{}, opts ...Option) (*Type, error) {
	return TypeFor(reflect.TypeOf(v), opts...)
}

// TypeFor builds a type descriptor for the supplied Go struct type.
// Anonymous embedded structs linearize into the ancestor chain in
// declaration order, anonymous embedded interfaces become declared
// interfaces, and named fields become declared fields bound to runtime
// accessors. Exported fields map to Public visibility, unexported to
// PackagePrivate; the typemeta tag can override either mapping.
func TypeFor(rType reflect.Type, opts ...Option) (*Type, error) {
	o := newOptions(opts)
	for rType != nil && rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	if rType == nil || rType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("unsupported type: %v, expected struct", rType)
	}
	return buildType(rType, rType, 0, true, o)
}

// buildType assembles a descriptor for rType; baseOffset accumulates embedded
// struct offsets so accessors address fields relative to the holder struct.
// Fields behind an embedded pointer cannot share the holder address space and
// stay unbound.
func buildType(rType, holder reflect.Type, baseOffset uintptr, bound bool, o *options) (*Type, error) {
	result := &Type{Name: rType.Name(), rType: rType}
	superTail := &result.Super
	for i := 0; i < rType.NumField(); i++ {
		field := rType.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Interface {
			if field.Type.Name() != "" {
				result.Interfaces = append(result.Interfaces, &Interface{Name: field.Type.Name()})
			}
			continue
		}
		if embedded, embeddedBound := embeddedStruct(field.Type, bound); embedded != nil && field.Anonymous {
			embeddedOffset := baseOffset + field.Offset
			if !embeddedBound {
				embeddedOffset = 0
			}
			super, err := buildType(embedded, holder, embeddedOffset, embeddedBound, o)
			if err != nil {
				return nil, err
			}
			*superTail = super
			tail := super
			for tail.Super != nil {
				tail = tail.Super
			}
			superTail = &tail.Super
			continue
		}
		aField, err := buildField(field, rType.Name(), holder, baseOffset, bound, o)
		if err != nil {
			return nil, err
		}
		if aField != nil {
			result.Fields = append(result.Fields, aField)
		}
	}
	return result, nil
}

func buildField(field reflect.StructField, owner string, holder reflect.Type, baseOffset uintptr, bound bool, o *options) (*Field, error) {
	aTag, err := tag.Parse(field.Tag, o.tagNames...)
	if err != nil {
		return nil, fmt.Errorf("invalid tag on %v.%v: %w", owner, field.Name, err)
	}
	if aTag.Ignore {
		return nil, nil
	}
	name := field.Name
	switch {
	case aTag.Name != "":
		name = aTag.Name
	case aTag.CaseFormat != "":
		name = text.CaseFormatUpperCamel.Format(field.Name, text.CaseFormat(aTag.CaseFormat))
	default:
		name = o.formatName(field.Name)
	}
	visibility := Public
	if field.PkgPath != "" {
		visibility = PackagePrivate
	}
	if aTag.Visibility != "" {
		if visibility, err = ParseVisibility(aTag.Visibility); err != nil {
			return nil, fmt.Errorf("invalid tag on %v.%v: %w", owner, field.Name, err)
		}
	}
	result := &Field{Name: name, Visibility: visibility, Owner: owner}
	if bound {
		xField := field
		xField.Offset += baseOffset
		result.xField = xunsafe.NewField(xField)
		result.holder = holder
	}
	return result, nil
}

func embeddedStruct(rType reflect.Type, bound bool) (reflect.Type, bool) {
	switch rType.Kind() {
	case reflect.Struct:
		return rType, bound
	case reflect.Ptr:
		if rType.Elem().Kind() == reflect.Struct {
			return rType.Elem(), false
		}
	}
	return nil, false
}

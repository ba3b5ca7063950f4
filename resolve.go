package typemeta

import (
	"strings"

	"github.com/vintecdyne/typemeta/validate"
)

// LookupField locates a field by name, breaking scope if requested.
// Superclasses and interfaces are considered.
//
// The superclass chain is walked most derived type first, matching only
// fields declared at each level. A non-public match is returned with access
// forced when forceAccess is set, otherwise the level is skipped and the
// walk continues. When the walk finds nothing, public fields of all
// implemented interfaces are searched; a match on two or more interfaces is
// an AmbiguousFieldError. A (nil, nil) result means the field does not
// exist, which is not an error.
func (t *Type) LookupField(name string, forceAccess bool) (*Field, error) {
	if err := validate.IsTrue(t != nil, "the type must not be null"); err != nil {
		return nil, err
	}
	if err := validate.IsTrue(strings.TrimSpace(name) != "", "the field name must not be blank"); err != nil {
		return nil, err
	}
	for aType := t; aType != nil; aType = aType.Super {
		field := aType.DeclaredField(name)
		if field == nil {
			continue
		}
		if field.Visibility != Public {
			if !forceAccess {
				continue
			}
			field.ForceAccess()
		}
		return field, nil
	}
	//an interface field can be hidden by a non public superclass field,
	//hence interfaces of the whole hierarchy are searched separately
	var match *Field
	for _, iface := range t.AllInterfaces() {
		candidate := iface.FieldByName(name)
		if candidate == nil {
			continue
		}
		if match != nil {
			return nil, &AmbiguousFieldError{Field: name, Type: t.Name}
		}
		match = candidate
	}
	return match, nil
}

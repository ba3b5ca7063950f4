package typemeta

import "reflect"

type (
	//Type represents a class like type descriptor with a single
	//superclass link, declared interfaces and declared fields
	Type struct {
		Name       string
		Super      *Type
		Interfaces []*Interface
		Fields     []*Field
		rType      reflect.Type
	}

	//Interface represents an interface descriptor, interface fields
	//are public in the host object model
	Interface struct {
		Name    string
		Parents []*Interface
		Fields  []*Field
	}
)

// ReflectType returns the Go type this descriptor was derived from, or nil
// for externally supplied metadata.
func (t *Type) ReflectType() reflect.Type {
	return t.rType
}

// DeclaredField returns a field declared directly on this type, excluding
// inherited fields, or nil when no declared field matches.
func (t *Type) DeclaredField(name string) *Field {
	if t == nil {
		return nil
	}
	for _, field := range t.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

// FieldByName returns a public field declared on this interface or nil.
func (i *Interface) FieldByName(name string) *Field {
	if i == nil {
		return nil
	}
	for _, field := range i.Fields {
		if field.Name == name && field.Visibility == Public {
			return field
		}
	}
	return nil
}

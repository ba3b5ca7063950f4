package typemeta

import (
	"fmt"
	"reflect"

	"github.com/viant/xunsafe"
)

// Field represents a field descriptor. Fields derived from a Go struct carry
// a runtime accessor; externally supplied metadata fields do not.
type Field struct {
	Name       string
	Visibility Visibility
	//Owner is the name of the declaring type or interface
	Owner      string
	xField     *xunsafe.Field
	holder     reflect.Type
	accessible bool
}

// Accessible reports whether access to a non-public field has been forced.
func (f *Field) Accessible() bool {
	return f.accessible
}

// ForceAccess marks the field accessible, breaking the scope restriction
// coded by the programmer. Use with care.
func (f *Field) ForceAccess() {
	f.accessible = true
}

func (f *Field) canAccess() bool {
	return f.Visibility == Public || f.accessible
}

func (f *Field) checkTarget(target interface{}) error {
	if f.xField == nil {
		return fmt.Errorf("field %v.%v is not bound to a runtime type", f.Owner, f.Name)
	}
	if !f.canAccess() {
		return fmt.Errorf("cannot access %v field %v.%v without forced access", f.Visibility, f.Owner, f.Name)
	}
	targetType := reflect.TypeOf(target)
	if targetType == nil || targetType.Kind() != reflect.Ptr || targetType.Elem() != f.holder {
		return fmt.Errorf("invalid target: expected %v, had %T", reflect.PtrTo(f.holder), target)
	}
	return nil
}

// Value reads the field from target, which has to be a pointer to the struct
// the owning descriptor was derived from.
func (f *Field) Value(target interface{}) (interface{}, error) {
	if err := f.checkTarget(target); err != nil {
		return nil, err
	}
	return f.xField.Value(xunsafe.AsPointer(target)), nil
}

// SetValue writes value to the field on target.
func (f *Field) SetValue(target interface{}, value interface{}) error {
	if err := f.checkTarget(target); err != nil {
		return err
	}
	f.xField.SetValue(xunsafe.AsPointer(target), value)
	return nil
}

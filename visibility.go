package typemeta

import "fmt"

// Visibility represents a member access level of the host object model.
type Visibility int

const (
	Private Visibility = iota
	PackagePrivate
	Protected
	Public
)

func (v Visibility) String() string {
	switch v {
	case Private:
		return "private"
	case PackagePrivate:
		return "package"
	case Protected:
		return "protected"
	case Public:
		return "public"
	}
	return ""
}

// ParseVisibility returns visibility matching supplied name
func ParseVisibility(name string) (Visibility, error) {
	switch name {
	case "private":
		return Private, nil
	case "package":
		return PackagePrivate, nil
	case "protected":
		return Protected, nil
	case "public":
		return Public, nil
	}
	return 0, fmt.Errorf("unknown visibility: %v", name)
}

package typemeta

// AllInterfaces returns all interfaces implemented by this type and its
// superclasses. The order is determined by looking at each directly declared
// interface in turn, most derived type first, and following the interface
// parents before moving to the next sibling. Later duplicates are ignored,
// so the first discovery position is kept. A nil type yields nil.
func (t *Type) AllInterfaces() []*Interface {
	if t == nil {
		return nil
	}
	var found []*Interface
	seen := map[*Interface]bool{}
	for aType := t; aType != nil; aType = aType.Super {
		found = appendInterfaces(found, aType.Interfaces, seen)
	}
	return found
}

func appendInterfaces(dest []*Interface, declared []*Interface, seen map[*Interface]bool) []*Interface {
	for _, iface := range declared {
		if seen[iface] {
			continue
		}
		seen[iface] = true
		dest = append(dest, iface)
		dest = appendInterfaces(dest, iface.Parents, seen)
	}
	return dest
}

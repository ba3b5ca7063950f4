package typemeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestType_AllInterfaces(t *testing.T) {
	ib := &Interface{Name: "IB"}
	id := &Interface{Name: "ID"}
	idExtendsIb := &Interface{Name: "ID", Parents: []*Interface{ib}}
	ic := &Interface{Name: "IC"}
	iaExtendsIc := &Interface{Name: "IA", Parents: []*Interface{ic}}
	base := &Type{Name: "Base", Interfaces: []*Interface{ib}}

	var testCases = []struct {
		description string
		aType       *Type
		expect      []string
	}{
		{
			description: "nil type",
		},
		{
			description: "derived first, then superclass declaration order",
			aType:       &Type{Name: "Derived", Super: base, Interfaces: []*Interface{id}},
			expect:      []string{"ID", "IB"},
		},
		{
			description: "interface reachable via parent and superclass appears once, at first discovery",
			aType:       &Type{Name: "Derived", Super: base, Interfaces: []*Interface{idExtendsIb}},
			expect:      []string{"ID", "IB"},
		},
		{
			description: "parents are followed before the next sibling",
			aType:       &Type{Name: "Holder", Interfaces: []*Interface{iaExtendsIc, ib}},
			expect:      []string{"IA", "IC", "IB"},
		},
		{
			description: "three level hierarchy",
			aType: &Type{Name: "Leaf",
				Super:      &Type{Name: "Middle", Super: base, Interfaces: []*Interface{iaExtendsIc}},
				Interfaces: []*Interface{idExtendsIb}},
			expect: []string{"ID", "IB", "IA", "IC"},
		},
	}

	for _, testCase := range testCases {
		var actual []string
		for _, iface := range testCase.aType.AllInterfaces() {
			actual = append(actual, iface.Name)
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

package typemeta

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/tagly/format/text"
)

type entityBase struct {
	id    int `typemeta:"visibility=private"`
	Label string
}

type entity struct {
	entityBase
	Active bool
	secret string
	Legacy string `typemeta:"ignore"`
}

type describable interface {
	Describe() string
}

type describedEntity struct {
	describable
	Code int `typemeta:"name=code"`
}

func TestTypeOf(t *testing.T) {
	aType, err := TypeOf(&entity{})
	require.Nil(t, err)

	assert.Equal(t, "entity", aType.Name)
	require.NotNil(t, aType.Super)
	assert.Equal(t, "entityBase", aType.Super.Name)

	var testCases = []struct {
		description      string
		name             string
		forceAccess      bool
		expectOwner      string
		expectVisibility Visibility
		expectNotFound   bool
	}{
		{
			description:      "exported field",
			name:             "Active",
			expectOwner:      "entity",
			expectVisibility: Public,
		},
		{
			description:      "exported field of the embedded struct",
			name:             "Label",
			expectOwner:      "entityBase",
			expectVisibility: Public,
		},
		{
			description:    "unexported field without forced access",
			name:           "secret",
			expectNotFound: true,
		},
		{
			description:      "unexported field with forced access",
			name:             "secret",
			forceAccess:      true,
			expectOwner:      "entity",
			expectVisibility: PackagePrivate,
		},
		{
			description:      "tag downgraded field with forced access",
			name:             "id",
			forceAccess:      true,
			expectOwner:      "entityBase",
			expectVisibility: Private,
		},
		{
			description:    "ignored field",
			name:           "Legacy",
			expectNotFound: true,
		},
	}

	for _, testCase := range testCases {
		field, fieldErr := aType.LookupField(testCase.name, testCase.forceAccess)
		if !assert.Nil(t, fieldErr, testCase.description) {
			continue
		}
		if testCase.expectNotFound {
			assert.Nil(t, field, testCase.description)
			continue
		}
		if !assert.NotNil(t, field, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expectOwner, field.Owner, testCase.description)
		assert.Equal(t, testCase.expectVisibility, field.Visibility, testCase.description)
	}
}

func TestField_Value(t *testing.T) {
	instance := &entity{entityBase: entityBase{id: 3, Label: "abc"}, Active: true, secret: "xyz"}
	aType, err := TypeOf(instance)
	require.Nil(t, err)

	active, err := aType.LookupField("Active", false)
	require.Nil(t, err)
	value, err := active.Value(instance)
	require.Nil(t, err)
	assert.Equal(t, true, value)

	require.Nil(t, active.SetValue(instance, false))
	assert.Equal(t, false, instance.Active)

	label, err := aType.LookupField("Label", false)
	require.Nil(t, err)
	value, err = label.Value(instance)
	require.Nil(t, err)
	assert.Equal(t, "abc", value)

	secret, err := aType.LookupField("secret", true)
	require.Nil(t, err)
	value, err = secret.Value(instance)
	require.Nil(t, err)
	assert.Equal(t, "xyz", value)

	id, err := aType.LookupField("id", true)
	require.Nil(t, err)
	value, err = id.Value(instance)
	require.Nil(t, err)
	assert.Equal(t, 3, value)
}

func TestField_Value_errors(t *testing.T) {
	instance := &entity{secret: "xyz"}
	aType, err := TypeOf(instance)
	require.Nil(t, err)

	metaOnly := &Field{Name: "virtual", Visibility: Public, Owner: "Entity"}
	_, err = metaOnly.Value(instance)
	assert.NotNil(t, err)

	secret := aType.DeclaredField("secret")
	require.NotNil(t, secret)
	_, err = secret.Value(instance)
	assert.NotNil(t, err) //access was never forced

	active, err := aType.LookupField("Active", false)
	require.Nil(t, err)
	_, err = active.Value(entity{})
	assert.NotNil(t, err) //target has to be a pointer
}

func TestTypeOf_interfaces(t *testing.T) {
	aType, err := TypeOf(&describedEntity{})
	require.Nil(t, err)
	require.Equal(t, 1, len(aType.Interfaces))
	assert.Equal(t, "describable", aType.Interfaces[0].Name)

	code := aType.DeclaredField("code")
	require.NotNil(t, code)
	assert.Equal(t, Public, code.Visibility)
}

func TestTypeOf_caseFormat(t *testing.T) {
	aType, err := TypeOf(&entity{}, WithCaseFormat(text.CaseFormatLowerCamel))
	require.Nil(t, err)
	assert.NotNil(t, aType.DeclaredField("active"))
	assert.NotNil(t, aType.Super.DeclaredField("label"))
}

func TestTypeFor_invalidInput(t *testing.T) {
	var testCases = []struct {
		description string
		rType       reflect.Type
	}{
		{
			description: "nil type",
		},
		{
			description: "non struct type",
			rType:       reflect.TypeOf(0),
		},
		{
			description: "pointer to non struct",
			rType:       reflect.TypeOf(new(string)),
		},
	}
	for _, testCase := range testCases {
		_, err := TypeFor(testCase.rType)
		assert.NotNil(t, err, testCase.description)
	}
}

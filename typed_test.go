package ordmap

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	for _, tc := range []struct {
		decl     string
		accepted []interface{}
		rejected []interface{}
	}{
		{"*", []interface{}{nil, 1, "x", []int{}}, nil},
		{"int", []interface{}{1, int8(2), uint64(3)}, []interface{}{1.0, "1", nil, true}},
		{"float", []interface{}{1.0, float32(2)}, []interface{}{1, "1.0"}},
		{"numeric", []interface{}{1, 1.5, "42", " 3.14 "}, []interface{}{"abc", true, nil}},
		{"string|null", []interface{}{"", nil}, []interface{}{1, []byte("x")}},
		{"scalar", []interface{}{1, 1.5, true, "x"}, []interface{}{nil, []int{1}, &struct{}{}}},
		{"array", []interface{}{[]int{1}, [1]int{1}, map[string]int{}}, []interface{}{"x", &struct{}{}}},
		{"iterable", []interface{}{[]int{1}, make(chan int)}, []interface{}{1}},
		{"object", []interface{}{&struct{}{}}, []interface{}{struct{}{}, 1}},
		{"resource", []interface{}{os.Stdout, uintptr(1)}, []interface{}{1}},
		{"callable", []interface{}{func() {}}, []interface{}{1}},
		{"bool", []interface{}{true, false}, []interface{}{0}},
	} {
		t.Run(tc.decl, func(t *testing.T) {
			spec, err := ParseType(tc.decl)
			require.NoError(t, err)
			for _, v := range tc.accepted {
				assert.True(t, spec.Check(v), "%#v should be accepted", v)
			}
			for _, v := range tc.rejected {
				assert.False(t, spec.Check(v), "%#v should be rejected", v)
			}
		})
	}
}

func TestParseType_unknown(t *testing.T) {
	_, err := ParseType("int|banana")
	require.ErrorIs(t, err, UnknownTypeDeclaration)
	assert.Contains(t, err.Error(), "banana")

	assert.Panics(t, func() { MustParseType("banana") })
}

func TestValidated(t *testing.T) {
	m := NewValidated(MustParseType("int"), MustParseType("string"))
	assert.Equal(t, "Map<int, string>", m.Signature())

	require.NoError(t, m.Set(1, "one"))

	err := m.Set("1", "one")
	require.ErrorIs(t, err, TypeConstraintViolation)
	var typeErr *TypeConstraintError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "key", typeErr.Kind)
	assert.Equal(t, "int", typeErr.Expected)
	assert.Equal(t, "string", typeErr.Actual)
	assert.Equal(t, "Map<int, string>", typeErr.Signature)
	assert.Equal(t, "Map<int, string> expected key of type 'int', got string", err.Error())

	err = m.Set(2, 2)
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "value", typeErr.Kind)

	assert.Equal(t, 1, m.Len(), "a rejected Set leaves the map unchanged")
	v, err := m.Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, "one", v)

	// Reads are not validated.
	assert.False(t, m.Has("1"))
	_, err = m.Lookup("1")
	require.ErrorIs(t, err, NotFound)
}

func TestValidated_refStore(t *testing.T) {
	m := NewValidated(AnyType, MustParseType("int"))
	ref, err := m.Get("k")
	require.NoError(t, err)

	require.ErrorIs(t, ref.Store("not an int"), TypeConstraintViolation)
	assert.False(t, m.Has("k"))

	ref, err = m.Get("k")
	require.NoError(t, err)
	require.NoError(t, ref.Store(5))
	assert.True(t, m.Has("k"))
}

func TestNewTyped(t *testing.T) {
	type object struct{ name string }

	m := NewTyped[*object, []string]()
	assert.Equal(t, "Map<*ordmap.object, []string>", m.Signature())

	require.NoError(t, m.Set(&object{"a"}, []string{"a"}))
	require.ErrorIs(t, m.Set(object{"a"}, []string{"a"}), TypeConstraintViolation)
	require.ErrorIs(t, m.Set(&object{"b"}, nil), TypeConstraintViolation)
	assert.Equal(t, 1, m.Len())

	anyMap := NewTyped[string, any]()
	assert.Equal(t, "Map<string, any>", anyMap.Signature())
	require.NoError(t, anyMap.Set("k", nil))
	assert.True(t, anyMap.Has("k"))
}

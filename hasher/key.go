package hasher

import (
	"bytes"
	"reflect"
)

// Kind identifies the hashing rule of a key.
type Kind uint8

const (
	KindNull = Kind(iota)
	KindInt
	KindFloat
	KindBool
	KindText
	KindObject
	KindHandle
	KindComposite
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	case KindObject:
		return "object"
	case KindHandle:
		return "handle"
	case KindComposite:
		return "composite"
	}
	return "unknown"
}

// Key is a classified map key. Concrete types:
//
//   - Null
//   - Int
//   - Float
//   - Bool
//   - Text
//   - Object    (identity of a pointer, channel or unsafe pointer)
//   - Handle    (numeric opaque handle, e.g. a file descriptor)
//   - Composite (slice, array, map or struct, compared structurally)
type Key interface {
	Kind() Kind
	// Value returns the Go value the key was built from.
	Value() interface{}
	hasherKey() // sealed
}

type Null struct{}
type Int int64
type Float float64
type Bool bool
type Text string
type Handle uintptr

// Object is a key compared by identity: two distinct instances with equal
// content are different keys.
type Object struct {
	addr uintptr
	typ  reflect.Type
	ref  interface{}
}

// Composite is a key compared by structure. canon holds the type name
// followed by the deterministic encoding of the value.
type Composite struct {
	value interface{}
	canon []byte
}

func (Null) Kind() Kind      { return KindNull }
func (Int) Kind() Kind       { return KindInt }
func (Float) Kind() Kind     { return KindFloat }
func (Bool) Kind() Kind      { return KindBool }
func (Text) Kind() Kind      { return KindText }
func (Handle) Kind() Kind    { return KindHandle }
func (Object) Kind() Kind    { return KindObject }
func (Composite) Kind() Kind { return KindComposite }

func (Null) Value() interface{}        { return nil }
func (k Int) Value() interface{}       { return int64(k) }
func (k Float) Value() interface{}     { return float64(k) }
func (k Bool) Value() interface{}      { return bool(k) }
func (k Text) Value() interface{}      { return string(k) }
func (k Handle) Value() interface{}    { return uintptr(k) }
func (k Object) Value() interface{}    { return k.ref }
func (k Composite) Value() interface{} { return k.value }

func (Null) hasherKey()      {}
func (Int) hasherKey()       {}
func (Float) hasherKey()     {}
func (Bool) hasherKey()      {}
func (Text) hasherKey()      {}
func (Handle) hasherKey()    {}
func (Object) hasherKey()    {}
func (Composite) hasherKey() {}

// Canonical returns the bytes the composite is hashed and compared by.
func (k Composite) Canonical() []byte {
	return k.canon
}

// IsEqualKey reports whether two classified keys are the same map key.
func IsEqualKey(keyA, keyB Key) bool {
	if keyA == nil || keyB == nil || keyA.Kind() != keyB.Kind() {
		return false
	}

	switch a := keyA.(type) {
	case Null:
		return true
	case Int:
		return a == keyB.(Int)
	case Float:
		return a == keyB.(Float)
	case Bool:
		return a == keyB.(Bool)
	case Text:
		return a == keyB.(Text)
	case Handle:
		return a == keyB.(Handle)
	case Object:
		b := keyB.(Object)
		return a.addr == b.addr && a.typ == b.typ
	case Composite:
		return bytes.Equal(a.canon, keyB.(Composite).canon)
	}
	return false
}

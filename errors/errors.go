package errors

import (
	"fmt"
)

var (
	NotFound                     = fmt.Errorf("not found")
	UnsupportedKeyType           = fmt.Errorf("unsupported key type")
	TypeConstraintViolation      = fmt.Errorf("type constraint violation")
	InternalConsistencyViolation = fmt.Errorf("internal consistency violation")
	UnknownTypeDeclaration       = fmt.Errorf("unknown type declaration")
)

// UnsupportedKeyTypeError is returned by the key classifier when a key's runtime
// kind has no hashing rule.
type UnsupportedKeyTypeError struct {
	Type   string
	Reason string
}

func (e *UnsupportedKeyTypeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported key type %s: %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("unsupported key type %s", e.Type)
}

func (e *UnsupportedKeyTypeError) Unwrap() error { return UnsupportedKeyType }

// TypeConstraintError is returned by a validated map when a key or a value
// does not satisfy the declared type.
type TypeConstraintError struct {
	Kind      string // "key" or "value"
	Expected  string
	Actual    string
	Signature string
}

func (e *TypeConstraintError) Error() string {
	return fmt.Sprintf("%s expected %s of type '%s', got %s", e.Signature, e.Kind, e.Expected, e.Actual)
}

func (e *TypeConstraintError) Unwrap() error { return TypeConstraintViolation }

package ordmap

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/xaionaro-go/ordmap/errors"
)

// TypeSpec is a declared key or value type of a validated map.
type TypeSpec struct {
	Name  string
	Check func(value interface{}) bool
}

// AnyType accepts everything.
var AnyType = TypeSpec{Name: "*", Check: func(interface{}) bool { return true }}

func (t TypeSpec) check(value interface{}) bool {
	if t.Check == nil {
		return true
	}
	return t.Check(value)
}

func (t TypeSpec) String() string {
	if t.Name == "" {
		return "*"
	}
	return t.Name
}

// TypeOf returns a TypeSpec accepting values of the Go type T (or
// implementing T, if it is an interface). TypeOf[any]() accepts everything,
// including nil.
func TypeOf[T any]() TypeSpec {
	typ := reflect.TypeFor[T]()
	if typ.Kind() == reflect.Interface && typ.NumMethod() == 0 {
		return TypeSpec{Name: "any", Check: AnyType.Check}
	}
	return TypeSpec{
		Name: typ.String(),
		Check: func(value interface{}) bool {
			_, ok := value.(T)
			return ok
		},
	}
}

type fder interface {
	Fd() uintptr
}

func kindOf(value interface{}) reflect.Kind {
	if value == nil {
		return reflect.Invalid
	}
	return reflect.TypeOf(value).Kind()
}

func isInt(value interface{}) bool {
	switch kindOf(value) {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isFloat(value interface{}) bool {
	k := kindOf(value)
	return k == reflect.Float32 || k == reflect.Float64
}

func isString(value interface{}) bool {
	return kindOf(value) == reflect.String
}

func isBool(value interface{}) bool {
	return kindOf(value) == reflect.Bool
}

func isNumeric(value interface{}) bool {
	if isInt(value) || isFloat(value) {
		return true
	}
	if !isString(value) {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(reflect.ValueOf(value).String()), 64)
	return err == nil
}

func isArray(value interface{}) bool {
	switch kindOf(value) {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

var builtinTypes = map[string]func(interface{}) bool{
	"*":       AnyType.Check,
	"mixed":   AnyType.Check,
	"int":     isInt,
	"float":   isFloat,
	"numeric": isNumeric,
	"bool":    isBool,
	"string":  isString,
	"scalar": func(value interface{}) bool {
		return isInt(value) || isFloat(value) || isBool(value) || isString(value)
	},
	"null": func(value interface{}) bool {
		return value == nil
	},
	"array": isArray,
	"iterable": func(value interface{}) bool {
		return isArray(value) || kindOf(value) == reflect.Chan
	},
	"object": func(value interface{}) bool {
		return kindOf(value) == reflect.Ptr
	},
	"resource": func(value interface{}) bool {
		if _, ok := value.(fder); ok {
			return true
		}
		return kindOf(value) == reflect.Uintptr
	},
	"callable": func(value interface{}) bool {
		return kindOf(value) == reflect.Func
	},
}

// ParseType builds a TypeSpec from a declaration such as "int", "string|null"
// or "*". Recognized names: *, mixed, int, float, numeric, bool, string,
// scalar, null, array, iterable, object, resource, callable.
func ParseType(decl string) (TypeSpec, error) {
	decl = strings.TrimSpace(decl)
	if decl == "" {
		return AnyType, nil
	}

	var checks []func(interface{}) bool
	var names []string
	for _, subType := range strings.Split(decl, "|") {
		subType = strings.TrimSpace(subType)
		check, ok := builtinTypes[subType]
		if !ok {
			return TypeSpec{}, fmt.Errorf("%w '%s'", errors.UnknownTypeDeclaration, subType)
		}
		checks = append(checks, check)
		names = append(names, subType)
	}

	spec := TypeSpec{Name: strings.Join(names, "|")}
	if len(checks) == 1 {
		spec.Check = checks[0]
		return spec, nil
	}
	spec.Check = func(value interface{}) bool {
		for _, check := range checks {
			if check(value) {
				return true
			}
		}
		return false
	}
	return spec, nil
}

// MustParseType is like ParseType but panics on an unknown declaration.
func MustParseType(decl string) TypeSpec {
	spec, err := ParseType(decl)
	if err != nil {
		panic(err)
	}
	return spec
}

type validator struct {
	key       TypeSpec
	value     TypeSpec
	signature string
}

func newValidator(key, value TypeSpec) *validator {
	return &validator{
		key:       key,
		value:     value,
		signature: fmt.Sprintf("Map<%s, %s>", key, value),
	}
}

func describeType(value interface{}) string {
	if value == nil {
		return "null"
	}
	return fmt.Sprintf("%T", value)
}

func (v *validator) check(key, value interface{}) error {
	if !v.key.check(key) {
		return &errors.TypeConstraintError{
			Kind:      "key",
			Expected:  v.key.String(),
			Actual:    describeType(key),
			Signature: v.signature,
		}
	}
	if !v.value.check(value) {
		return &errors.TypeConstraintError{
			Kind:      "value",
			Expected:  v.value.String(),
			Actual:    describeType(value),
			Signature: v.signature,
		}
	}
	return nil
}

// NewValidated creates a Map whose Set (and Ref.Store) rejects keys and
// values not satisfying the declared types with a *TypeConstraintError.
// Reads are not affected.
func NewValidated(keyType, valueType TypeSpec, opts ...Option) *Map {
	opts = append(opts[:len(opts):len(opts)], withValidator(newValidator(keyType, valueType)))
	return New(opts...)
}

// NewTyped is NewValidated with the declared types taken from the type
// parameters.
func NewTyped[K, V any](opts ...Option) *Map {
	return NewValidated(TypeOf[K](), TypeOf[V](), opts...)
}

package hasher

import (
	"fmt"
	"math"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/xaionaro-go/ordmap/errors"
)

var canonicalEncMode cbor.EncMode

func init() {
	opts := cbor.CoreDetEncOptions()
	opts.NilContainers = cbor.NilContainerAsEmpty
	encMode, err := opts.EncMode()
	if err != nil {
		panic(fmt.Errorf("unable to initialize the canonical encoder: %w", err))
	}
	canonicalEncMode = encMode
}

type fder interface {
	Fd() uintptr
}

// Classify converts a Go value into a Key.
//
// Pointers, channels and unsafe pointers become identity keys: the same
// instance is the same key, equal content is not enough. Pointers to
// zero-sized values are rejected, distinct instances may share an address.
// Slices, arrays, maps and structs become composite keys compared by their
// structure. Structs with fields the encoder cannot see (unexported or
// tagged "-") are rejected.
func Classify(keyI interface{}) (Key, error) {
	switch key := keyI.(type) {
	case nil:
		return Null{}, nil
	case Key:
		return key, nil
	case string:
		return Text(key), nil
	case []byte:
		return Text(key), nil
	case int:
		return Int(key), nil
	case int8:
		return Int(key), nil
	case int16:
		return Int(key), nil
	case int32:
		return Int(key), nil
	case int64:
		return Int(key), nil
	case uint8:
		return Int(key), nil
	case uint16:
		return Int(key), nil
	case uint32:
		return Int(key), nil
	case uint:
		return classifyUint(uint64(key), keyI)
	case uint64:
		return classifyUint(key, keyI)
	case uintptr:
		return Handle(key), nil
	case float32:
		return Float(key), nil
	case float64:
		return Float(key), nil
	case bool:
		return Bool(key), nil
	case fder:
		return Handle(key.Fd()), nil
	}

	return classifyReflect(keyI)
}

func classifyUint(v uint64, keyI interface{}) (Key, error) {
	if v > math.MaxInt64 {
		return nil, &errors.UnsupportedKeyTypeError{
			Type:   fmt.Sprintf("%T", keyI),
			Reason: fmt.Sprintf("value %d overflows int64", v),
		}
	}
	return Int(v), nil
}

func classifyReflect(keyI interface{}) (Key, error) {
	v := reflect.ValueOf(keyI)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return classifyUint(v.Uint(), keyI)
	case reflect.Uintptr:
		return Handle(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return Float(v.Float()), nil
	case reflect.Bool:
		return Bool(v.Bool()), nil
	case reflect.String:
		return Text(v.String()), nil
	case reflect.Ptr:
		if !v.IsNil() && v.Type().Elem().Size() == 0 {
			return nil, &errors.UnsupportedKeyTypeError{
				Type:   fmt.Sprintf("%T", keyI),
				Reason: "pointer to a zero-sized value has no identity",
			}
		}
		return Object{addr: v.Pointer(), typ: v.Type(), ref: keyI}, nil
	case reflect.Chan, reflect.UnsafePointer:
		return Object{addr: v.Pointer(), typ: v.Type(), ref: keyI}, nil
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		return newComposite(keyI, v.Type())
	}

	return nil, &errors.UnsupportedKeyTypeError{Type: fmt.Sprintf("%T", keyI)}
}

// maxCompositeDepth bounds the walk over nested composite keys.
const maxCompositeDepth = 64

// checkEncodable verifies that the canonical encoding of v distinguishes
// every value it may hold: the encoder skips unexported and "-" tagged
// struct fields, so two keys differing only there would collide.
func checkEncodable(v reflect.Value, depth int) error {
	if depth > maxCompositeDepth {
		return fmt.Errorf("nesting deeper than %d levels", maxCompositeDepth)
	}
	switch v.Kind() {
	case reflect.Interface, reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		return checkEncodable(v.Elem(), depth+1)
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			return nil
		}
		for i := 0; i < v.Len(); i++ {
			if err := checkEncodable(v.Index(i), depth+1); err != nil {
				return err
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if err := checkEncodable(iter.Key(), depth+1); err != nil {
				return err
			}
			if err := checkEncodable(iter.Value(), depth+1); err != nil {
				return err
			}
		}
	case reflect.Struct:
		typ := v.Type()
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				return fmt.Errorf("field %s.%s is unexported", typ, field.Name)
			}
			if field.Tag.Get("cbor") == "-" || field.Tag.Get("json") == "-" {
				return fmt.Errorf("field %s.%s is excluded from encoding", typ, field.Name)
			}
			if err := checkEncodable(v.Field(i), depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func newComposite(keyI interface{}, typ reflect.Type) (Key, error) {
	if err := checkEncodable(reflect.ValueOf(keyI), 0); err != nil {
		return nil, &errors.UnsupportedKeyTypeError{
			Type:   typ.String(),
			Reason: err.Error(),
		}
	}
	body, err := canonicalEncMode.Marshal(keyI)
	if err != nil {
		return nil, &errors.UnsupportedKeyTypeError{
			Type:   typ.String(),
			Reason: err.Error(),
		}
	}
	typeName := typ.String()
	canon := make([]byte, 0, len(typeName)+1+len(body))
	canon = append(canon, typeName...)
	canon = append(canon, 0)
	canon = append(canon, body...)
	return Composite{value: keyI, canon: canon}, nil
}

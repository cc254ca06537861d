package enums

import (
	"fmt"
	"reflect"
)

// TypeDescriptor describes the integral type backing an enum: its
// [reflect.Kind], width in bits, and signedness. Descriptors are computed
// once at registration and are identical across repeated [Underlying]
// calls.
type TypeDescriptor struct {
	Kind   reflect.Kind
	Bits   int
	Signed bool
}

// String returns the Go name of the underlying type, e.g. "uint8".
func (d TypeDescriptor) String() string {
	return d.Kind.String()
}

func describe(t reflect.Type) TypeDescriptor {
	switch k := t.Kind(); k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return TypeDescriptor{Kind: k, Bits: t.Bits(), Signed: true}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return TypeDescriptor{Kind: k, Bits: t.Bits(), Signed: false}
	default:
		// Unreachable: the Enum constraint admits only integer kinds.
		panic(fmt.Sprintf("enums: %s is not an integer type", t))
	}
}

// Underlying returns the [TypeDescriptor] of the integral type backing T.
// It panics if T is not registered.
func Underlying[T Enum]() TypeDescriptor {
	return lookup[T]().desc
}

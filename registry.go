package enums

import (
	"fmt"
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
)

// Enum is the constraint satisfied by enumeration types: any defined
// integer type. Every generic operation in this package takes its type
// parameter through Enum, so "must be an enum type" is checked once, at
// the constraint, instead of at every call site.
type Enum interface {
	constraints.Integer
}

// Constant is a single named constant of an enum type, supplied to
// [Register] in declaration order.
type Constant[T Enum] struct {
	Name  string
	Value T
}

// registry is the introspection facility: one immutable *info[T] per
// registered type, keyed by reflect.Type. Entries are written exactly once
// and never mutated, so reads need no further synchronization.
var registry sync.Map

// info holds the registered metadata for one enum type.
type info[T Enum] struct {
	names  []string
	values []T
	index  map[string]int // name -> first declaration position
	desc   TypeDescriptor
	flags  bool
}

func typeOf[T Enum]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// lookup returns the metadata for T, panicking if T was never registered.
// Every public operation goes through here.
func lookup[T Enum]() *info[T] {
	t := typeOf[T]()
	v, ok := registry.Load(t)
	if !ok {
		panic(fmt.Sprintf("enums: type %s is not registered", t))
	}
	return v.(*info[T])
}

// Register records the constants of T, in declaration order, making T
// usable with every operation in this package. It is typically called
// from an init function of the package declaring T.
//
// Names must be unique and non-empty; values may repeat (aliases).
// Register panics on a duplicate or empty name, and if T is already
// registered. It is safe to register different types concurrently.
//
//	enums.Register([]enums.Constant[Color]{
//	    {Name: "Red", Value: Red},
//	    {Name: "Green", Value: Green},
//	    {Name: "Blue", Value: Blue},
//	})
func Register[T Enum](consts []Constant[T], opts ...Option) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := typeOf[T]()
	in := &info[T]{
		names:  make([]string, 0, len(consts)),
		values: make([]T, 0, len(consts)),
		index:  make(map[string]int, len(consts)),
		desc:   describe(t),
		flags:  cfg.flags,
	}

	for i, c := range consts {
		if c.Name == "" {
			panic(fmt.Sprintf("enums: empty constant name at position %d for %s", i, t))
		}
		if _, dup := in.index[c.Name]; dup {
			panic(fmt.Sprintf("enums: duplicate constant name %q for %s", c.Name, t))
		}
		in.index[c.Name] = i
		in.names = append(in.names, c.Name)
		in.values = append(in.values, c.Value)
	}

	if _, loaded := registry.LoadOrStore(t, in); loaded {
		panic(fmt.Sprintf("enums: %s is already registered", t))
	}
}

// IsRegistered reports whether T has been registered.
func IsRegistered[T Enum]() bool {
	_, ok := registry.Load(typeOf[T]())
	return ok
}

package enums

import "fmt"

// Name returns the symbolic name bound to v, or ("", false) if no
// registered constant of T has that exact value. When several names alias
// the same value, the first declared name wins.
// It panics if T is not registered.
func Name[T Enum](v T) (string, bool) {
	in := lookup[T]()
	return in.name(v)
}

// Names returns the names of all registered constants of T, in
// declaration order. The returned slice is a copy.
// It panics if T is not registered.
func Names[T Enum]() []string {
	in := lookup[T]()
	out := make([]string, len(in.names))
	copy(out, in.names)
	return out
}

// Values returns one T per registered constant, in declaration order,
// including duplicates when names alias the same value. The returned
// slice is a copy.
// It panics if T is not registered.
func Values[T Enum]() []T {
	in := lookup[T]()
	out := make([]T, len(in.values))
	copy(out, in.values)
	return out
}

// IsDefined reports whether v is a legal member of T: equal to a declared
// constant, or for flags enums, any bitwise-OR of declared values.
// It panics if T is not registered.
func IsDefined[T Enum](v T) bool {
	in := lookup[T]()
	if _, ok := in.name(v); ok {
		return true
	}
	if !in.flags || v == 0 {
		// A zero without a declared zero constant is undefined even for
		// flags enums.
		return false
	}
	rest := uint64(v)
	for _, dv := range in.values {
		rest &^= uint64(dv)
	}
	return rest == 0
}

// Validate returns nil if v is a legal member of T, or an error wrapping
// [ErrInvalidValue] otherwise. It panics if T is not registered.
func Validate[T Enum](v T) error {
	if IsDefined(v) {
		return nil
	}
	in := lookup[T]()
	return fmt.Errorf("enums: %s is not a defined %s value: %w",
		in.decimal(v), typeOf[T](), ErrInvalidValue)
}

// HasFlag reports whether every bit of flag is set in v. A zero flag is
// contained in every value, mirroring bitwise semantics.
func HasFlag[T Enum](v, flag T) bool {
	return v&flag == flag
}

func (in *info[T]) name(v T) (string, bool) {
	for i, dv := range in.values {
		if dv == v {
			return in.names[i], true
		}
	}
	return "", false
}

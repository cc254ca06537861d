package enums

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders v according to a format specifier:
//
//   - "G" or "g" (and ""): the symbolic name; for flags enums a
//     decomposition such as "Read, Write"; falls back to the decimal
//     underlying value when v has no name.
//   - "D" or "d": the decimal underlying value.
//   - "X" or "x": the uppercase hexadecimal bit pattern, zero-padded to
//     the width of the underlying type.
//   - "F" or "f": like "G" but attempts flags decomposition even for
//     enums not registered with [WithFlags].
//
// Any other specifier fails with an error wrapping [ErrInvalidFormat].
// Format panics if T is not registered.
func Format[T Enum](v T, spec string) (string, error) {
	in := lookup[T]()
	switch spec {
	case "", "G", "g":
		return in.general(v), nil
	case "D", "d":
		return in.decimal(v), nil
	case "X", "x":
		return in.hex(v), nil
	case "F", "f":
		if s, ok := in.flagsString(v); ok {
			return s, nil
		}
		return in.decimal(v), nil
	default:
		return "", fmt.Errorf("enums: unknown format specifier %q: %w", spec, ErrInvalidFormat)
	}
}

func (in *info[T]) general(v T) string {
	if s, ok := in.name(v); ok {
		return s
	}
	if in.flags {
		if s, ok := in.flagsString(v); ok {
			return s
		}
	}
	return in.decimal(v)
}

func (in *info[T]) decimal(v T) string {
	if in.desc.Signed {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

func (in *info[T]) hex(v T) string {
	// Mask to the declared width so sign extension does not leak into
	// the rendered pattern.
	mask := ^uint64(0) >> (64 - in.desc.Bits)
	return fmt.Sprintf("%0*X", in.desc.Bits/4, uint64(v)&mask)
}

// flagsString decomposes v into a comma-separated union of declared
// names. It reports false when v is zero without a declared zero constant
// or when bits remain that no constant covers.
func (in *info[T]) flagsString(v T) (string, bool) {
	if s, ok := in.name(v); ok {
		return s, true
	}
	if v == 0 {
		return "", false
	}

	var parts []string
	rest := uint64(v)
	for i, dv := range in.values {
		b := uint64(dv)
		if b == 0 {
			continue
		}
		if rest&b == b {
			parts = append(parts, in.names[i])
			rest &^= b
		}
	}
	if rest != 0 || len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ", "), true
}

package enums

import (
	"strconv"
	"strings"
)

// Parse converts text into a value of T. The text may be a declared
// constant name, a decimal literal of T's underlying type, or for flags
// enums a combination of names joined by "|" or "," such as "Read|Write".
// Surrounding whitespace is ignored. Name matching is case-sensitive; use
// [ParseInsensitive] to fold case.
//
// Failure returns a [*ParseError]. Parse panics if T is not registered.
func Parse[T Enum](text string) (T, error) {
	return parse[T](text, false)
}

// ParseInsensitive is [Parse] with case-insensitive name matching. When
// names differ only in case, the first declared match wins.
func ParseInsensitive[T Enum](text string) (T, error) {
	return parse[T](text, true)
}

func parse[T Enum](text string, fold bool) (T, error) {
	in := lookup[T]()
	var zero T

	s := strings.TrimSpace(text)
	if s == "" {
		return zero, &ParseError{Type: typeOf[T](), Input: text}
	}

	if v, ok := in.byName(s, fold); ok {
		return v, nil
	}

	if c := s[0]; c == '+' || c == '-' || ('0' <= c && c <= '9') {
		v, err := in.numeric(s)
		if err != nil {
			return zero, &ParseError{Type: typeOf[T](), Input: text, Err: err}
		}
		return v, nil
	}

	if in.flags {
		if v, ok := in.combination(s, fold); ok {
			return v, nil
		}
	}

	return zero, &ParseError{Type: typeOf[T](), Input: text}
}

func (in *info[T]) byName(s string, fold bool) (T, bool) {
	if i, ok := in.index[s]; ok {
		return in.values[i], true
	}
	if fold {
		for i, n := range in.names {
			if strings.EqualFold(n, s) {
				return in.values[i], true
			}
		}
	}
	return 0, false
}

// numeric parses s as a literal of the underlying type, range-checked to
// its declared width.
func (in *info[T]) numeric(s string) (T, error) {
	if in.desc.Signed {
		n, err := strconv.ParseInt(s, 10, in.desc.Bits)
		if err != nil {
			return 0, err
		}
		return T(n), nil
	}
	n, err := strconv.ParseUint(s, 10, in.desc.Bits)
	if err != nil {
		return 0, err
	}
	return T(n), nil
}

// combination resolves a "|"- or ","-joined union of declared names.
// Every part must resolve; an empty part fails the whole input.
func (in *info[T]) combination(s string, fold bool) (T, bool) {
	var acc T
	found := false
	for _, chunk := range strings.Split(s, ",") {
		for _, part := range strings.Split(chunk, "|") {
			part = strings.TrimSpace(part)
			if part == "" {
				return 0, false
			}
			v, ok := in.byName(part, fold)
			if !ok {
				return 0, false
			}
			acc |= v
			found = true
		}
	}
	return acc, found
}

package enums

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidFormat is returned (wrapped) by [Format] when the format
// specifier is not one of the recognized codes.
var ErrInvalidFormat = errors.New("invalid format specifier")

// ErrInvalidValue is returned (wrapped) by [Validate] and the marshal
// helpers when a value is not a defined member of its enum type.
var ErrInvalidValue = errors.New("invalid enum value")

// ParseError reports a failed [Parse] or [ParseInsensitive] call. It
// records the enum type and the offending input, and wraps any underlying
// numeric conversion error.
type ParseError struct {
	// Type is the enum type the input was parsed against.
	Type reflect.Type

	// Input is the original text, before trimming.
	Input string

	// Err is the underlying cause, if any (e.g. a strconv range error).
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("enums: cannot parse %q as %s: %v", e.Input, e.Type, e.Err)
	}
	return fmt.Sprintf("enums: cannot parse %q as %s", e.Input, e.Type)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err (or any error in its chain) is a
// [*ParseError].
func IsParseError(err error) bool {
	if err == nil {
		return false
	}
	var pe *ParseError
	return errors.As(err, &pe)
}

package enums

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Boundary helpers. These are free functions rather than methods so that
// enum authors can implement the standard marshal interfaces in two
// lines:
//
//	func (c Color) MarshalText() ([]byte, error) { return enums.MarshalText(c) }
//	func (c *Color) UnmarshalText(b []byte) (err error) {
//	    *c, err = enums.UnmarshalText[Color](b)
//	    return err
//	}

// MarshalText renders v as its symbolic name (or flags decomposition).
// Undefined values fail with an error wrapping [ErrInvalidValue].
func MarshalText[T Enum](v T) ([]byte, error) {
	if err := Validate(v); err != nil {
		return nil, err
	}
	s, err := Format(v, "G")
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText parses data with [ParseInsensitive] semantics and rejects
// values that parse numerically but are not defined members of T.
func UnmarshalText[T Enum](data []byte) (T, error) {
	v, err := ParseInsensitive[T](string(data))
	if err != nil {
		return v, err
	}
	if err := Validate(v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// MarshalJSON renders v as a JSON string of its symbolic name.
func MarshalJSON[T Enum](v T) ([]byte, error) {
	b, err := MarshalText(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(b))
}

// UnmarshalJSON accepts either a JSON string (name or flags combination,
// case-insensitive) or a JSON number (underlying value).
func UnmarshalJSON[T Enum](data []byte) (T, error) {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return UnmarshalText[T]([]byte(s))
	}
	return UnmarshalText[T]([]byte(strings.TrimSpace(string(data))))
}

// ScanValue converts a database value into T, accepting string, []byte,
// and int64 sources. It implements the body of a database/sql Scanner.
func ScanValue[T Enum](src any) (T, error) {
	var zero T
	switch s := src.(type) {
	case string:
		return UnmarshalText[T]([]byte(s))
	case []byte:
		return UnmarshalText[T](s)
	case int64:
		v, err := fromInt64[T](s)
		if err != nil {
			return zero, err
		}
		if err := Validate(v); err != nil {
			return zero, err
		}
		return v, nil
	case nil:
		return zero, fmt.Errorf("enums: cannot scan NULL as %s: %w", typeOf[T](), ErrInvalidValue)
	default:
		return zero, fmt.Errorf("enums: cannot scan %T as %s: %w", src, typeOf[T](), ErrInvalidValue)
	}
}

// fromInt64 converts a database integer to T, range-checked against the
// underlying type's width. A bare T(s) conversion would truncate, letting
// an out-of-range value alias into a defined constant.
func fromInt64[T Enum](s int64) (T, error) {
	in := lookup[T]()
	v := T(s)
	if in.desc.Signed {
		if int64(v) != s {
			return 0, rangeErr[T](s)
		}
		return v, nil
	}
	if s < 0 || uint64(v) != uint64(s) {
		return 0, rangeErr[T](s)
	}
	return v, nil
}

func rangeErr[T Enum](s int64) error {
	return fmt.Errorf("enums: %d out of range for %s: %w", s, typeOf[T](), ErrInvalidValue)
}

// DriverValue renders v as its symbolic name for database storage. It
// implements the body of a driver.Valuer.
func DriverValue[T Enum](v T) (driver.Value, error) {
	b, err := MarshalText(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

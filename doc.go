// Package enums provides generic, compile-time-constrained utilities for
// working with enumeration types: parsing, formatting, and name/value
// listing over any integer-backed enum.
//
// Go has no runtime metadata for enums, so the package is built around a
// small metadata registry. An enum type is any defined integer type whose
// constants have been registered once, typically from an init function:
//
//	type Color uint8
//
//	const (
//	    Red Color = iota
//	    Green
//	    Blue
//	)
//
//	func init() {
//	    enums.Register([]enums.Constant[Color]{
//	        {Name: "Red", Value: Red},
//	        {Name: "Green", Value: Green},
//	        {Name: "Blue", Value: Blue},
//	    })
//	}
//
// Registration records names and values in declaration order. After that,
// every operation is a read-only lookup and is safe for unlimited
// concurrent use.
//
// # Operations
//
//   - [Format]: render a value by specifier ("G" name, "D" decimal,
//     "X" hex, "F" flags decomposition).
//   - [Name]: symbolic name for a value, with an ok result for misses.
//   - [Names] and [Values]: all declared names or values, in declaration
//     order, aliases included.
//   - [Underlying]: a [TypeDescriptor] for the integral type backing the
//     enum.
//   - [Parse] and [ParseInsensitive]: convert a name, numeric literal, or
//     flags combination back into a value.
//
// # Validation
//
// Any bit pattern is a legal value of an integer type, so formatting never
// fails on the value itself; undefined values render as their decimal
// underlying value. Boundary crossings are where validity matters:
// [IsDefined] and [Validate] check membership, and the marshal helpers
// ([MarshalText], [UnmarshalText], [MarshalJSON], [UnmarshalJSON],
// [ScanValue], [DriverValue]) reject undefined values with
// [ErrInvalidValue].
//
// # Flags Enums
//
// Register with [WithFlags] to mark a bitmask enum. Flags enums parse
// combinations such as "Read|Write" or "Read, Write", format unions via
// decomposition, and validate any union of declared bits. [HasFlag] tests
// bitwise containment.
//
// # Errors
//
// Failures mirror the operations: an unknown format specifier wraps
// [ErrInvalidFormat], a failed parse is a [*ParseError] (inspect with
// [IsParseError]), and undefined values at marshal or validation
// boundaries wrap [ErrInvalidValue]. A missed name lookup is not an
// error; [Name] reports it through its second result.
//
// Using an operation with a type that was never registered panics: it is
// a programming error on the same level as using an invalid option value.
//
// # Callback Shapes
//
// [Parser], [Consumer], [Producer], [Selector], and [Comparer] are
// generic function types constrained to enum types. They carry no
// implementations; they exist so external code can declare strongly-typed
// enum callbacks without restating the constraint.
//
// # Sets
//
// The [github.com/nolag/enums/enumset] subpackage provides a Set type
// over registered enums with the usual algebra (union, intersection,
// difference, complement) and declaration-ordered iteration.
package enums

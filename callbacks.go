package enums

// Callback shapes: generic function types constrained to enum types.
// They carry no implementations. Declaring a callback against one of
// these types gets the enum constraint for free instead of restating it:
//
//	var pick enums.Selector[Color] = func(a, b Color) Color { ... }

// Parser converts text into a value of T, in the manner of [Parse].
type Parser[T Enum] func(text string) (T, error)

// Consumer accepts a value of T.
type Consumer[T Enum] func(v T)

// Producer yields a value of T.
type Producer[T Enum] func() T

// Selector chooses one of two values of T.
type Selector[T Enum] func(a, b T) T

// Comparer orders two values of T, returning a negative number when
// a < b, zero when a == b, and a positive number when a > b.
type Comparer[T Enum] func(a, b T) int

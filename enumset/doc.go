// Package enumset provides a set type over registered enum values.
//
// A [Set] is a plain map-backed set constrained to enum types, with the
// registry-aware operations that plain maps lack:
//
//   - [All]: the set of every declared constant of a type.
//   - [Set.Complement]: the declared constants absent from a set.
//   - [Set.Slice]: members in declaration order, not map order.
//
// plus the usual algebra ([Set.Union], [Set.Intersect], [Set.Diff]) and
// membership operations ([Set.Add], [Set.Remove], [Set.Contains]).
//
// Sets are safe for concurrent reads but not for concurrent mutation,
// like any Go map. Operations that consult declaration order or the full
// constant list panic if the element type was never registered with
// [github.com/nolag/enums.Register].
package enumset

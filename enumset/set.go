package enumset

import "github.com/nolag/enums"

// Set is a set of enum values. The zero value of the map type is not
// usable; create sets with [New], [Of], or [All].
type Set[T enums.Enum] map[T]struct{}

// New returns an empty set.
func New[T enums.Enum]() Set[T] {
	return make(Set[T])
}

// Of returns a set containing the given values.
func Of[T enums.Enum](vs ...T) Set[T] {
	s := make(Set[T], len(vs))
	return s.Add(vs...)
}

// All returns a set of every declared constant of T. It panics if T is
// not registered.
func All[T enums.Enum]() Set[T] {
	return Of(enums.Values[T]()...)
}

// Add inserts the given values and returns the receiver for chaining.
func (s Set[T]) Add(vs ...T) Set[T] {
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

// Remove deletes the given values and returns the receiver for chaining.
func (s Set[T]) Remove(vs ...T) Set[T] {
	for _, v := range vs {
		delete(s, v)
	}
	return s
}

// Contains reports whether v is a member of s.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of members.
func (s Set[T]) Len() int {
	return len(s)
}

// IsEmpty reports whether s has no members.
func (s Set[T]) IsEmpty() bool {
	return len(s) == 0
}

// Union returns a new set with the members of both s and other.
func (s Set[T]) Union(other Set[T]) Set[T] {
	out := make(Set[T], len(s)+len(other))
	for v := range s {
		out[v] = struct{}{}
	}
	for v := range other {
		out[v] = struct{}{}
	}
	return out
}

// Intersect returns a new set with the members common to s and other.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	out := make(Set[T])
	for v := range s {
		if other.Contains(v) {
			out[v] = struct{}{}
		}
	}
	return out
}

// Diff returns a new set with the members of s that are not in other.
func (s Set[T]) Diff(other Set[T]) Set[T] {
	out := make(Set[T])
	for v := range s {
		if !other.Contains(v) {
			out[v] = struct{}{}
		}
	}
	return out
}

// Complement returns the declared constants of T that are not members of
// s. It panics if T is not registered.
func (s Set[T]) Complement() Set[T] {
	return All[T]().Diff(s)
}

// Equal reports whether s and other have exactly the same members.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// Slice returns the members of s in declaration order, aliases collapsed
// to a single entry. Members that are not declared constants (possible
// for flags unions) are omitted. It panics if T is not registered.
func (s Set[T]) Slice() []T {
	out := make([]T, 0, len(s))
	seen := make(Set[T], len(s))
	for _, v := range enums.Values[T]() {
		if s.Contains(v) && !seen.Contains(v) {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// Each calls fn for every declared member, in declaration order. Like
// [Set.Slice], members that are not declared constants are omitted.
func (s Set[T]) Each(fn func(T)) {
	for _, v := range s.Slice() {
		fn(v)
	}
}

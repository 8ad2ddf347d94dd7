// Package compare provides utilities for comparing values.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// EqualFunc reports whether two values of type T are equal.
// Containers that locate entries by scanning take one of these
// instead of requiring a hash.
type EqualFunc[T any] func(a, b T) bool

// Builtin returns an EqualFunc that uses the == operator.
func Builtin[T comparable]() EqualFunc[T] {
	return func(a, b T) bool {
		return a == b
	}
}

// ByEquals returns an EqualFunc that delegates to the Equals method of the first argument.
func ByEquals[T Comparable[T]]() EqualFunc[T] {
	return func(a, b T) bool {
		return a.Equals(b)
	}
}

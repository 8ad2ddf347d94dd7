package assoc

import "fmt"

// Pair is one key/value association held by a KeyedSequence.
// It is immutable: updating a slot replaces the Pair, it never edits one in place.
type Pair[K any, V any] struct {
	key   K
	value V
}

// NewPair creates a Pair from a key and a value.
func NewPair[K any, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{
		key:   key,
		value: value,
	}
}

func (p Pair[K, V]) Key() K { //nolint:ireturn
	return p.key
}

func (p Pair[K, V]) Value() V { //nolint:ireturn
	return p.value
}

// WithValue returns a copy of the pair holding value under the same key.
func (p Pair[K, V]) WithValue(value V) Pair[K, V] {
	return Pair[K, V]{
		key:   p.key,
		value: value,
	}
}

// String renders the pair as key:value.
func (p Pair[K, V]) String() string {
	return fmt.Sprintf("%v:%v", p.key, p.value)
}

// Package assoc provides KeyedSequence, a small associative container that keeps
// its pairs in a dense buffer and finds them by scanning.
//
// Every lookup is O(n). That is the intended trade-off: the container suits
// small collections, needs nothing from its keys beyond an equality test, and
// has no hashing to get wrong.
package assoc

import (
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/amp-labs/amp-assoc/compare"
	errors2 "github.com/amp-labs/amp-assoc/errors"
	"github.com/amp-labs/amp-assoc/logger"
)

// KeyedSequence is a growable sequence of key/value pairs with unique keys.
//
// Live pairs always occupy the prefix [0, Size()) of the backing buffer; the
// remaining slots up to Capacity() are empty. Capacity doubles when an insert
// finds the buffer full and never shrinks.
//
// Order: new keys are appended, so until the first Remove the sequence is in
// insertion order. Remove moves the last live pair into the vacated slot, so
// callers must not rely on order surviving a removal.
//
// Thread-safety: KeyedSequence does no locking. Callers that share one across
// goroutines must serialize access, for example with NewThreadSafe.
type KeyedSequence[K any, V any] struct {
	pairs []Pair[K, V] // len(pairs) is the capacity
	count int
	equal compare.EqualFunc[K]
	opts  options
}

// New creates an empty KeyedSequence whose keys are compared with ==.
func New[K comparable, V any](opts ...Option) *KeyedSequence[K, V] {
	return NewWithEqual[K, V](compare.Builtin[K](), opts...)
}

// NewComparable creates an empty KeyedSequence whose keys are compared with their Equals method.
func NewComparable[K compare.Comparable[K], V any](opts ...Option) *KeyedSequence[K, V] {
	return NewWithEqual[K, V](compare.ByEquals[K](), opts...)
}

// NewWithEqual creates an empty KeyedSequence using equal to decide whether two keys match.
// The function must be an equivalence relation; it panics if equal is nil.
func NewWithEqual[K any, V any](equal compare.EqualFunc[K], opts ...Option) *KeyedSequence[K, V] {
	if equal == nil {
		panic("assoc: nil EqualFunc")
	}

	o := newOptions(opts)

	s := &KeyedSequence[K, V]{
		pairs: make([]Pair[K, V], o.capacity),
		equal: equal,
		opts:  o,
	}

	o.recordShape(0, o.capacity)

	return s
}

// Set associates value with key. If the key is already present its value is
// replaced in place, leaving size and position alone. Otherwise the pair is
// appended, growing the buffer first if it is full.
//
// Returns ErrInvalidArgument if key or value is nil; the sequence, including
// its capacity, is left untouched in that case.
func (s *KeyedSequence[K, V]) Set(key K, value V) error {
	s.opts.recordOp(opSet)

	if err := checkArguments(key, value); err != nil {
		return s.fail(opSet, err)
	}

	if idx := s.indexOf(key); idx >= 0 {
		s.pairs[idx] = s.pairs[idx].WithValue(value)

		return nil
	}

	if s.count == len(s.pairs) {
		s.Expand()
	}

	s.pairs[s.count] = NewPair(key, value)
	s.count++

	s.opts.recordShape(s.count, len(s.pairs))

	return nil
}

// SetAll calls Set for each pair in order. Pairs that fail are skipped and the
// rest are still applied; the failures come back joined into one error.
func (s *KeyedSequence[K, V]) SetAll(pairs ...Pair[K, V]) error {
	var errs errors2.Collection

	for i, p := range pairs {
		if err := s.Set(p.key, p.value); err != nil {
			errs.Add(fmt.Errorf("pair %d: %w", i, err))
		}
	}

	return errs.GetError()
}

// Get returns the value associated with key, or ErrKeyNotFound.
func (s *KeyedSequence[K, V]) Get(key K) (V, error) { //nolint:ireturn
	s.opts.recordOp(opGet)

	idx := s.indexOf(key)
	if idx < 0 {
		var zero V

		return zero, s.fail(opGet, fmt.Errorf("%w: %v", errors2.ErrKeyNotFound, key))
	}

	return s.pairs[idx].value, nil
}

// GetOrElse returns the value associated with key, or defaultValue if there is none.
func (s *KeyedSequence[K, V]) GetOrElse(key K, defaultValue V) V { //nolint:ireturn
	if value, ok := s.Lookup(key); ok {
		return value
	}

	return defaultValue
}

// Lookup returns the value associated with key and whether it was found.
func (s *KeyedSequence[K, V]) Lookup(key K) (V, bool) { //nolint:ireturn
	idx := s.indexOf(key)
	if idx < 0 {
		var zero V

		return zero, false
	}

	return s.pairs[idx].value, true
}

// HasKey reports whether a live pair has a key equal to key.
func (s *KeyedSequence[K, V]) HasKey(key K) bool {
	return s.indexOf(key) >= 0
}

// Find returns the index of the live pair whose key equals key, or ErrKeyNotFound.
// The index is only meaningful until the next Remove, Clear or sort.
func (s *KeyedSequence[K, V]) Find(key K) (int, error) {
	s.opts.recordOp(opFind)

	idx := s.indexOf(key)
	if idx < 0 {
		return -1, s.fail(opFind, fmt.Errorf("%w: %v", errors2.ErrKeyNotFound, key))
	}

	return idx, nil
}

// At returns the live pair at index, or ErrIndexOutOfRange.
func (s *KeyedSequence[K, V]) At(index int) (Pair[K, V], error) {
	s.opts.recordOp(opAt)

	if index < 0 || index >= s.count {
		return Pair[K, V]{}, s.fail(opAt,
			fmt.Errorf("%w: %d not in [0, %d)", errors2.ErrIndexOutOfRange, index, s.count))
	}

	return s.pairs[index], nil
}

// Remove deletes the pair whose key equals key. The last live pair is moved
// into the freed slot, so the order of the remaining pairs changes.
//
// Removing from an empty sequence returns ErrEmptyCollection. Removing a key
// that is absent from a non-empty sequence does nothing.
func (s *KeyedSequence[K, V]) Remove(key K) error {
	s.opts.recordOp(opRemove)

	if s.count == 0 {
		return s.fail(opRemove, fmt.Errorf("%w: cannot remove %v", errors2.ErrEmptyCollection, key))
	}

	idx := s.indexOf(key)
	if idx < 0 {
		return nil
	}

	last := s.count - 1

	s.pairs[idx] = s.pairs[last]
	s.pairs[last] = Pair[K, V]{}
	s.count = last

	s.opts.recordShape(s.count, len(s.pairs))

	return nil
}

// Size returns the number of live pairs.
func (s *KeyedSequence[K, V]) Size() int {
	return s.count
}

// Capacity returns the number of slots in the backing buffer.
func (s *KeyedSequence[K, V]) Capacity() int {
	return len(s.pairs)
}

// Expand doubles the capacity. Live pairs keep their indices. The new buffer is
// filled completely before it replaces the old one.
func (s *KeyedSequence[K, V]) Expand() {
	from := len(s.pairs)
	to := max(1, from*2) //nolint:mnd

	grown := make([]Pair[K, V], to)
	copy(grown, s.pairs[:s.count])

	s.pairs = grown

	s.log().Debug("expanded keyed sequence", "from", from, "to", to, "size", s.count)

	s.opts.recordExpansion()
	s.opts.recordShape(s.count, to)
}

// Clear removes every pair. Capacity is kept.
func (s *KeyedSequence[K, V]) Clear() {
	removed := s.count

	clear(s.pairs[:s.count])
	s.count = 0

	s.log().Debug("cleared keyed sequence", "removed", removed)

	s.opts.recordShape(0, len(s.pairs))
}

// Clone returns an independent copy with the same capacity, pairs, order and
// key equality. Keys and values are copied the way Go assigns them, so pointers
// inside them are shared. The clone keeps the logger but not the metrics label.
func (s *KeyedSequence[K, V]) Clone() *KeyedSequence[K, V] {
	if s == nil {
		return nil
	}

	pairs := make([]Pair[K, V], len(s.pairs))
	copy(pairs, s.pairs[:s.count])

	opts := s.opts
	opts.name = ""

	return &KeyedSequence[K, V]{
		pairs: pairs,
		count: s.count,
		equal: s.equal,
		opts:  opts,
	}
}

// Seq returns an iterator over the live pairs in their current order.
// The sequence must not be modified while the iterator is running.
func (s *KeyedSequence[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range s.count {
			if !yield(s.pairs[i].key, s.pairs[i].value) {
				return
			}
		}
	}
}

// Pairs returns a copy of the live pairs in their current order.
func (s *KeyedSequence[K, V]) Pairs() []Pair[K, V] {
	out := make([]Pair[K, V], s.count)
	copy(out, s.pairs[:s.count])

	return out
}

// Keys returns the live keys in their current order.
func (s *KeyedSequence[K, V]) Keys() []K {
	out := make([]K, 0, s.count)

	for i := range s.count {
		out = append(out, s.pairs[i].key)
	}

	return out
}

// Values returns the live values in their current order.
func (s *KeyedSequence[K, V]) Values() []V {
	out := make([]V, 0, s.count)

	for i := range s.count {
		out = append(out, s.pairs[i].value)
	}

	return out
}

// ForEach calls f for each live pair in the current order.
func (s *KeyedSequence[K, V]) ForEach(f func(key K, value V)) {
	for key, value := range s.Seq() {
		f(key, value)
	}
}

// String renders the sequence as "{}" when empty, otherwise as
// "{ k1:v1,k2:v2 }" in the current order.
func (s *KeyedSequence[K, V]) String() string {
	if s.count == 0 {
		return "{}"
	}

	var sb strings.Builder

	sb.WriteString("{ ")

	for i := range s.count {
		if i > 0 {
			sb.WriteByte(',')
		}

		sb.WriteString(s.pairs[i].String())
	}

	sb.WriteString(" }")

	return sb.String()
}

func (s *KeyedSequence[K, V]) indexOf(key K) int {
	for i := range s.count {
		if s.equal(s.pairs[i].key, key) {
			return i
		}
	}

	return -1
}

func (s *KeyedSequence[K, V]) fail(op string, err error) error {
	s.opts.recordError(err)

	if s.opts.instrumented() {
		return logger.AnnotateError(err, "sequence", s.opts.name, "op", op, "size", s.count)
	}

	return logger.AnnotateError(err, "op", op, "size", s.count)
}

func (s *KeyedSequence[K, V]) log() *slog.Logger {
	log := s.opts.logger
	if log == nil {
		log = logger.Get()
	}

	if s.opts.instrumented() {
		log = log.With("sequence", s.opts.name)
	}

	return log
}

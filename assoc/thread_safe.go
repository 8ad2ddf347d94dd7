package assoc

import (
	"iter"
	"sync"
)

// ThreadSafe wraps a KeyedSequence with one sync.RWMutex so it can be shared
// between goroutines. Mutating calls take the write lock; reads take the
// read lock and may run concurrently.
//
// The wrapped sequence must not be used directly once it has been wrapped.
type ThreadSafe[K any, V any] struct {
	mutex    sync.RWMutex
	internal *KeyedSequence[K, V]
}

// NewThreadSafe wraps seq. Returns nil if seq is nil.
func NewThreadSafe[K any, V any](seq *KeyedSequence[K, V]) *ThreadSafe[K, V] {
	if seq == nil {
		return nil
	}

	return &ThreadSafe[K, V]{
		internal: seq,
	}
}

func (t *ThreadSafe[K, V]) Set(key K, value V) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Set(key, value)
}

func (t *ThreadSafe[K, V]) SetAll(pairs ...Pair[K, V]) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.SetAll(pairs...)
}

func (t *ThreadSafe[K, V]) Get(key K) (V, error) { //nolint:ireturn
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Get(key)
}

func (t *ThreadSafe[K, V]) GetOrElse(key K, defaultValue V) V { //nolint:ireturn
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.GetOrElse(key, defaultValue)
}

func (t *ThreadSafe[K, V]) Lookup(key K) (V, bool) { //nolint:ireturn
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Lookup(key)
}

func (t *ThreadSafe[K, V]) HasKey(key K) bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.HasKey(key)
}

func (t *ThreadSafe[K, V]) Find(key K) (int, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Find(key)
}

func (t *ThreadSafe[K, V]) At(index int) (Pair[K, V], error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.At(index)
}

func (t *ThreadSafe[K, V]) Remove(key K) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Remove(key)
}

func (t *ThreadSafe[K, V]) Size() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Size()
}

func (t *ThreadSafe[K, V]) Capacity() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Capacity()
}

func (t *ThreadSafe[K, V]) Expand() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.internal.Expand()
}

func (t *ThreadSafe[K, V]) Clear() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.internal.Clear()
}

func (t *ThreadSafe[K, V]) SortFunc(cmp func(a, b K) int) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.internal.SortFunc(cmp)
}

// Update runs f with exclusive access to the wrapped sequence, for compound
// operations (check-then-set, bulk rewrites) that must not interleave with
// other callers. f must not keep the sequence after returning.
func (t *ThreadSafe[K, V]) Update(f func(seq *KeyedSequence[K, V]) error) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return f(t.internal)
}

// Clone returns a new, independently locked copy.
func (t *ThreadSafe[K, V]) Clone() *ThreadSafe[K, V] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return NewThreadSafe(t.internal.Clone())
}

// Seq snapshots the live pairs under the read lock and iterates over the
// snapshot, so no lock is held while the caller's loop body runs.
func (t *ThreadSafe[K, V]) Seq() iter.Seq2[K, V] {
	snapshot := t.Pairs()

	return func(yield func(K, V) bool) {
		for _, p := range snapshot {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

func (t *ThreadSafe[K, V]) Pairs() []Pair[K, V] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Pairs()
}

func (t *ThreadSafe[K, V]) Keys() []K {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Keys()
}

func (t *ThreadSafe[K, V]) Values() []V {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Values()
}

// ForEach calls f for each pair of a snapshot; f may call back into t.
func (t *ThreadSafe[K, V]) ForEach(f func(key K, value V)) {
	for key, value := range t.Seq() {
		f(key, value)
	}
}

func (t *ThreadSafe[K, V]) String() string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.String()
}

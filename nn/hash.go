package nn

import (
	"iter"

	"github.com/bvisness/nonnull/handle"
)

type hasher interface {
	Hash() uint64
}

// Hash returns the hash of the representation, so n.Hash() ==
// n.Nullable().Hash() for every handle kind. Representations without a Hash
// method hash by pointee address.
func (n NN[P, E]) Hash() uint64 {
	if h, ok := any(n.ptr).(hasher); ok {
		return h.Hash()
	}
	return handle.HashAddr(n.ptr.Get())
}

// Map is a hash map keyed by wrappers. Keys are equal when they hold the
// same pointee, whatever their representation's other state (two owners of
// one shared object are the same key). The zero Map is ready to use.
type Map[P Pointer[E], E any, V any] struct {
	buckets map[uint64][]mapEntry[P, E, V]
	n       int
}

type mapEntry[P Pointer[E], E any, V any] struct {
	key NN[P, E]
	val V
}

func NewMap[P Pointer[E], E any, V any]() *Map[P, E, V] {
	return &Map[P, E, V]{}
}

func (m *Map[P, E, V]) Set(key NN[P, E], val V) {
	if m.buckets == nil {
		m.buckets = make(map[uint64][]mapEntry[P, E, V])
	}
	h := key.Hash()
	bucket := m.buckets[h]
	for i := range bucket {
		if Equal(bucket[i].key, key) {
			bucket[i].val = val
			return
		}
	}
	m.buckets[h] = append(bucket, mapEntry[P, E, V]{key: key, val: val})
	m.n++
}

func (m *Map[P, E, V]) Get(key NN[P, E]) (V, bool) {
	for _, e := range m.buckets[key.Hash()] {
		if Equal(e.key, key) {
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

// Delete removes key and reports whether it was present.
func (m *Map[P, E, V]) Delete(key NN[P, E]) bool {
	h := key.Hash()
	bucket := m.buckets[h]
	for i := range bucket {
		if Equal(bucket[i].key, key) {
			bucket[i] = bucket[len(bucket)-1]
			bucket = bucket[:len(bucket)-1]
			if len(bucket) == 0 {
				delete(m.buckets, h)
			} else {
				m.buckets[h] = bucket
			}
			m.n--
			return true
		}
	}
	return false
}

func (m *Map[P, E, V]) Len() int {
	return m.n
}

// All iterates over the entries in no particular order.
func (m *Map[P, E, V]) All() iter.Seq2[NN[P, E], V] {
	return func(yield func(NN[P, E], V) bool) {
		for _, bucket := range m.buckets {
			for _, e := range bucket {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

package hashmap

import "iter"

// Iterator walks the records of a table in insertion order. The zero value
// is the end sentinel. Deleting the referenced key invalidates the iterator.
type Iterator[K comparable, V any] struct {
	rec *record[K, V]
}

func (it Iterator[K, V]) Ok() bool { return it.rec != nil }

func (it Iterator[K, V]) Key() K   { return it.rec.key }
func (it Iterator[K, V]) Value() V { return it.rec.val }

func (it *Iterator[K, V]) Next() { it.rec = it.rec.next }

// Iter returns an iterator at the oldest record, or the end sentinel when
// the table is empty.
func (t *T[K, V]) Iter() Iterator[K, V] {
	return Iterator[K, V]{rec: t.head}
}

// All yields the pairs of the table in insertion order.
func (t *T[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for rec := t.head; rec != nil; rec = rec.next {
			if !yield(rec.key, rec.val) {
				return
			}
		}
	}
}

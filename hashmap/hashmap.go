package hashmap

import (
	"iter"

	"github.com/ordkit/ordkit/sizeof"
)

const (
	initialSlots   = 8
	occupancyCoeff = 4
)

const (
	slotEmpty uint8 = iota
	slotFilled
	slotErased
)

// slot points at a record in the insertion order list. an erased slot keeps
// lookups probing past it while staying reusable for inserts.
type slot[K comparable, V any] struct {
	rec   *record[K, V]
	state uint8
}

// Pair is one key/value element for Of.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// T is an open addressing hash table with linear probing. Iteration yields
// records in insertion order. Records never move once created, so pointers
// returned by Ref stay valid until the key is deleted or the table cleared.
//
// The zero value is an empty table hashing with the runtime map hash.
type T[K comparable, V any] struct {
	hash  Hasher[K]
	slots []slot[K, V]
	head  *record[K, V]
	tail  *record[K, V]
	eles  int
	occ   int
	tombs bool
}

// New returns a table probing with the given hasher.
func New[K comparable, V any](hash Hasher[K]) T[K, V] {
	return T[K, V]{hash: hash}
}

// Of returns a table holding the given pairs, first occurrence winning.
func Of[K comparable, V any](pairs ...Pair[K, V]) T[K, V] {
	var t T[K, V]
	for _, p := range pairs {
		t.Insert(p.Key, p.Value)
	}
	return t
}

// Collect returns a table holding the pairs of seq, first occurrence winning.
func Collect[K comparable, V any](seq iter.Seq2[K, V]) T[K, V] {
	var t T[K, V]
	for k, v := range seq {
		t.Insert(k, v)
	}
	return t
}

func (t *T[K, V]) Len() int    { return t.eles }
func (t *T[K, V]) Empty() bool { return t.eles == 0 }

// Hasher returns the hasher the table probes with.
func (t *T[K, V]) Hasher() Hasher[K] {
	if t.hash == nil {
		t.hash = RuntimeHasher[K]()
	}
	return t.hash
}

func (t *T[K, V]) digest(k K) uint64 { return t.Hasher()(k) }

func (t *T[K, V]) Size() uint64 {
	return 0 +
		/* hash  */ 8 +
		/* slots */ sizeof.Slice(t.slots) +
		/* list  */ uint64(t.eles)*sizeof.Of[record[K, V]]() +
		/* head  */ 8 +
		/* tail  */ 8 +
		/* eles  */ 8 +
		/* occ   */ 8 +
		/* tombs */ 1 +
		0
}

// Insert adds the pair to the table. If the key is already present anywhere
// in its probe chain the call is a no-op and the retained value is returned
// with true. New records land in the first reusable slot the probe passed,
// preferring a tombstone over the chain's empty terminator; the probe must
// still scan the whole chain first, since the key may sit beyond a
// tombstone left by an earlier delete.
func (t *T[K, V]) Insert(k K, v V) (V, bool) {
	t.checkSize()

	mask := uint64(len(t.slots) - 1)
	i := t.digest(k) & mask
	free, haveFree := i, false
	for t.slots[i].state != slotEmpty {
		if t.slots[i].state == slotFilled {
			if t.slots[i].rec.key == k {
				return t.slots[i].rec.val, true
			}
		} else if !haveFree {
			free, haveFree = i, true
		}
		i = (i + 1) & mask
	}
	if !haveFree {
		free = i
	}

	rec := t.pushRecord(k, v)
	if t.slots[free].state == slotEmpty {
		t.occ++
	}
	t.slots[free] = slot[K, V]{rec: rec, state: slotFilled}
	return v, false
}

// Ref returns a pointer to the value stored for k, inserting a zero value
// first if the key is absent. The pointer stays valid until the key is
// deleted or the table cleared.
func (t *T[K, V]) Ref(k K) *V {
	t.checkSize()

	i, ok := t.lookupSlot(k)
	if !ok {
		rec := t.pushRecord(k, *new(V))
		if t.slots[i].state == slotEmpty {
			t.occ++
		}
		t.slots[i] = slot[K, V]{rec: rec, state: slotFilled}
	}
	return &t.slots[i].rec.val
}

// At returns the value stored for k, or ErrKeyNotFound. It never mutates
// the table.
func (t *T[K, V]) At(k K) (V, error) {
	i, ok := t.lookupSlot(k)
	if !ok {
		return *new(V), ErrKeyNotFound
	}
	return t.slots[i].rec.val, nil
}

// Delete removes k from the table, marking its slot as a tombstone so later
// lookups keep probing past it. Absent keys are a no-op.
func (t *T[K, V]) Delete(k K) {
	i, ok := t.lookupSlot(k)
	if !ok {
		return
	}
	t.unlink(t.slots[i].rec)
	t.slots[i] = slot[K, V]{state: slotErased}
	t.tombs = true
}

// Find returns an iterator at the record for k, or the end sentinel.
func (t *T[K, V]) Find(k K) Iterator[K, V] {
	i, ok := t.lookupSlot(k)
	if !ok {
		return Iterator[K, V]{}
	}
	return Iterator[K, V]{rec: t.slots[i].rec}
}

// Clear empties the table. With no tombstones outstanding it walks each
// live record's probe chain until the chain's terminating empty slot, which
// resets exactly the slots record clusters touched. Once a delete has left
// a tombstone that walk is not enough: a tombstone whose cluster holds no
// live record at or before it is on no record's chain, so the whole slot
// array is wiped instead.
func (t *T[K, V]) Clear() {
	if t.tombs {
		for i := range t.slots {
			t.slots[i] = slot[K, V]{}
		}
	} else {
		for rec := t.head; rec != nil; rec = rec.next {
			mask := uint64(len(t.slots) - 1)
			i := t.digest(rec.key) & mask
			for t.slots[i].state != slotEmpty {
				t.slots[i] = slot[K, V]{}
				i = (i + 1) & mask
			}
		}
	}
	t.head, t.tail = nil, nil
	t.eles, t.occ = 0, 0
	t.tombs = false
}

// Clone returns an independent copy of the table with the same hasher and
// the same insertion order.
func (t *T[K, V]) Clone() T[K, V] {
	c := T[K, V]{hash: t.hash}
	for rec := t.head; rec != nil; rec = rec.next {
		c.Insert(rec.key, rec.val)
	}
	return c
}

// lookupSlot probes for k, scanning past tombstones and colliding keys. It
// returns the index probing stopped at and whether that slot holds k.
func (t *T[K, V]) lookupSlot(k K) (uint64, bool) {
	if len(t.slots) == 0 {
		return 0, false
	}
	mask := uint64(len(t.slots) - 1)
	i := t.digest(k) & mask
	for {
		s := &t.slots[i]
		if s.state == slotEmpty {
			return i, false
		}
		if s.state == slotFilled && s.rec.key == k {
			return i, true
		}
		i = (i + 1) & mask
	}
}

// checkSize runs before any insert style probe. It materializes the initial
// slot table for the zero value and grows once occupancy, which counts every
// slot filled since the last rehash including later tombstones, reaches a
// quarter of capacity.
func (t *T[K, V]) checkSize() {
	if len(t.slots) == 0 {
		t.slots = make([]slot[K, V], initialSlots)
		return
	}
	if t.occ*occupancyCoeff >= len(t.slots) {
		_ = t.grow()
	}
}

// grow doubles the slot table and reprobes every live record. Records are
// not moved or copied, only the slots referencing them are rebuilt, so the
// insertion order list and outstanding value pointers are unaffected. It
// reports whether the table grew; on failure the table keeps operating over
// the occupancy threshold, degraded but correct.
func (t *T[K, V]) grow() bool {
	next := len(t.slots) * 2
	if next <= len(t.slots) {
		return false
	}

	slots := make([]slot[K, V], next)
	mask := uint64(next - 1)
	for rec := t.head; rec != nil; rec = rec.next {
		i := t.digest(rec.key) & mask
		for slots[i].state == slotFilled {
			i = (i + 1) & mask
		}
		slots[i] = slot[K, V]{rec: rec, state: slotFilled}
	}

	t.slots = slots
	t.occ = t.eles
	t.tombs = false
	return true
}

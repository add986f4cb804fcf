package hashmap

// record is one key/value pair on the insertion order list. records are
// allocated once and never move, they are only unlinked on delete.
type record[K comparable, V any] struct {
	next *record[K, V]
	prev *record[K, V]
	key  K
	val  V
}

func (t *T[K, V]) pushRecord(k K, v V) *record[K, V] {
	rec := &record[K, V]{key: k, val: v, prev: t.tail}
	if t.tail != nil {
		t.tail.next = rec
	} else {
		t.head = rec
	}
	t.tail = rec
	t.eles++
	return rec
}

func (t *T[K, V]) unlink(rec *record[K, V]) {
	if rec.prev != nil {
		rec.prev.next = rec.next
	} else {
		t.head = rec.next
	}
	if rec.next != nil {
		rec.next.prev = rec.prev
	} else {
		t.tail = rec.prev
	}
	rec.next, rec.prev = nil, nil
	t.eles--
}

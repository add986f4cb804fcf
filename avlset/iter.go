package avlset

import "cmp"

// Iterator walks a set in value order in either direction. An iterator with
// Ok() == false is the end sentinel; stepping Prev from it lands on the
// largest element. Deleting the referenced value invalidates the iterator.
type Iterator[V cmp.Ordered] struct {
	t *T[V]
	n *node[V]
}

func (it Iterator[V]) Ok() bool { return it.n != nil }

func (it Iterator[V]) Value() V { return it.n.value }

// Next advances to the in order successor: the leftmost descendant of the
// right child when there is one, otherwise the first ancestor reached from
// a left branch. Past the largest element it becomes the end sentinel.
func (it *Iterator[V]) Next() {
	n := it.n
	if n.right != nil {
		it.n = n.right.min()
		return
	}
	for n.parent != nil && n == n.parent.right {
		n = n.parent
	}
	it.n = n.parent
}

// Prev steps to the in order predecessor, the mirror of Next. From the end
// sentinel it moves to the largest element. On the smallest element it
// becomes the end sentinel.
func (it *Iterator[V]) Prev() {
	if it.n == nil {
		if it.t != nil && it.t.root != nil {
			it.n = it.t.root.max()
		}
		return
	}
	if it.n.left != nil {
		it.n = it.n.left.max()
		return
	}
	n := it.n
	for n.parent != nil && n == n.parent.left {
		n = n.parent
	}
	it.n = n.parent
}

// Iter returns an iterator at the smallest element, or the end sentinel
// when the set is empty.
func (t *T[V]) Iter() Iterator[V] {
	return Iterator[V]{t: t, n: t.first}
}

// End returns the end sentinel.
func (t *T[V]) End() Iterator[V] {
	return Iterator[V]{t: t}
}

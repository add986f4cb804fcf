package avlset

import (
	"cmp"
	"iter"

	"github.com/ordkit/ordkit/sizeof"
)

// T is a height balanced binary search tree of distinct values. Two values
// are the same element when neither orders below the other. Iteration is in
// ascending order.
//
// The zero value is an empty set.
type T[V cmp.Ordered] struct {
	root  *node[V]
	first *node[V]
	eles  int
}

// Of returns a set holding the given values, duplicates collapsed.
func Of[V cmp.Ordered](vs ...V) T[V] {
	var t T[V]
	for _, v := range vs {
		t.Insert(v)
	}
	return t
}

// Collect returns a set holding the values of seq, duplicates collapsed.
func Collect[V cmp.Ordered](seq iter.Seq[V]) T[V] {
	var t T[V]
	for v := range seq {
		t.Insert(v)
	}
	return t
}

func (t *T[V]) Len() int    { return t.eles }
func (t *T[V]) Empty() bool { return t.eles == 0 }

func (t *T[V]) Size() uint64 {
	return 0 +
		/* root  */ 8 +
		/* first */ 8 +
		/* eles  */ 8 +
		/* nodes */ uint64(t.eles)*sizeof.Of[node[V]]() +
		0
}

// Clear empties the set. Nodes are reclaimed once nothing references them.
func (t *T[V]) Clear() {
	t.root, t.first = nil, nil
	t.eles = 0
}

// Insert adds v to the set. Inserting a value already present is a no-op
// that keeps the stored element.
func (t *T[V]) Insert(v V) {
	t.root = t.insertValue(t.root, v, nil)
	t.updateFirst()
}

func (t *T[V]) insertValue(n *node[V], v V, parent *node[V]) *node[V] {
	if n == nil {
		t.eles++
		return &node[V]{value: v, height: 1, parent: parent}
	}
	switch {
	case v < n.value:
		n.left = t.insertValue(n.left, v, n)
	case n.value < v:
		n.right = t.insertValue(n.right, v, n)
	default:
		return n
	}
	n.updateHeight()
	return balanceNode(n)
}

// Delete removes v from the set. Absent values are a no-op.
func (t *T[V]) Delete(v V) {
	t.root = t.deleteValue(t.root, v)
	t.updateFirst()
}

// deleteValue removes v from the subtree at n and returns the new subtree
// root. Interior nodes are not unlinked in place: the value is swapped with
// its in order neighbor on the taller side (biasing the removal toward the
// side with more slack) and deletion recurses until the value sits in a
// leaf.
func (t *T[V]) deleteValue(n *node[V], v V) *node[V] {
	if n == nil {
		return nil
	}
	switch {
	case v < n.value:
		n.left = t.deleteValue(n.left, v)
	case n.value < v:
		n.right = t.deleteValue(n.right, v)
	default:
		if n.left == nil && n.right == nil {
			t.eles--
			return nil
		}
		if n.left == nil || n.right != nil && n.right.height > n.left.height {
			near := n.right.min()
			n.value, near.value = near.value, n.value
			n.right = t.deleteValue(n.right, v)
		} else {
			near := n.left.max()
			n.value, near.value = near.value, n.value
			n.left = t.deleteValue(n.left, v)
		}
	}
	n.updateHeight()
	return balanceNode(n)
}

func (t *T[V]) updateFirst() {
	if t.root == nil {
		t.first = nil
		return
	}
	t.first = t.root.min()
}

// LowerBound returns an iterator at the smallest element not below v, or
// the end sentinel when every element orders below v. A single descent
// suffices: equal stops immediately, smaller nodes are skipped right, and
// larger nodes are recorded as the candidate bound before descending left.
func (t *T[V]) LowerBound(v V) Iterator[V] {
	var lb *node[V]
	for n := t.root; n != nil; {
		switch {
		case n.value < v:
			n = n.right
		case v < n.value:
			lb = n
			n = n.left
		default:
			return Iterator[V]{t: t, n: n}
		}
	}
	return Iterator[V]{t: t, n: lb}
}

// Find returns an iterator at v, or the end sentinel.
func (t *T[V]) Find(v V) Iterator[V] {
	it := t.LowerBound(v)
	if it.Ok() && !(v < it.n.value) {
		return it
	}
	return t.End()
}

// Clone returns an independent copy of the set.
func (t *T[V]) Clone() T[V] {
	var c T[V]
	for it := t.Iter(); it.Ok(); it.Next() {
		c.Insert(it.Value())
	}
	return c
}

// All yields the elements of the set in ascending order.
func (t *T[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := t.Iter(); it.Ok(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

package avlset

// node is one value in the tree. A node owns its children; parent is a back
// reference used only for iterator walks.
type node[V any] struct {
	left   *node[V]
	right  *node[V]
	parent *node[V]
	value  V
	height int
}

// updateHeight recomputes the cached height from the children. A node with
// no children has height 1, a missing child counts as height 0.
func (n *node[V]) updateHeight() {
	h := 1
	if n.left != nil && n.left.height+1 > h {
		h = n.left.height + 1
	}
	if n.right != nil && n.right.height+1 > h {
		h = n.right.height + 1
	}
	n.height = h
}

// balance is the left height minus the right height.
func (n *node[V]) balance() int {
	b := 0
	if n.left != nil {
		b += n.left.height
	}
	if n.right != nil {
		b -= n.right.height
	}
	return b
}

func (n *node[V]) min() *node[V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[V]) max() *node[V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// rotateLeft lifts a's right child over a and returns it as the new subtree
// root. Both touched heights are recomputed; the caller relinks the result
// into a's old parent slot.
func rotateLeft[V any](a *node[V]) *node[V] {
	b := a.right
	m := b.left

	b.parent = a.parent
	a.right = m
	if m != nil {
		m.parent = a
	}
	b.left = a
	a.parent = b

	a.updateHeight()
	b.updateHeight()
	return b
}

// rotateRight is the mirror of rotateLeft.
func rotateRight[V any](a *node[V]) *node[V] {
	b := a.left
	m := b.right

	b.parent = a.parent
	a.left = m
	if m != nil {
		m.parent = a
	}
	b.right = a
	a.parent = b

	a.updateHeight()
	b.updateHeight()
	return b
}

// balanceNode restores the height invariant at n after a structural change
// below it. A balance of -2 or +2 picks a single rotation, or a double
// rotation when the inner grandchild is the heavy one.
func balanceNode[V any](n *node[V]) *node[V] {
	switch n.balance() {
	case -2:
		if n.right.balance() == 1 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	case 2:
		if n.left.balance() == -1 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	}
	return n
}

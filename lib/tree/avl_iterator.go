package tree

// Iterator is a bidirectional in-order cursor over the tree linkage. It
// carries no auxiliary storage; movement is pure parent/child walking.
// The zero current element is the end sentinel, one past the maximum,
// and stepping back from it lands on the tree maximum.
//
// An Iterator is a value; copies advance independently. Mutating the tree
// invalidates every live iterator except at the erased element's
// neighbors, exactly as the underlying linkage dictates.
type Iterator[E NodeEmbedder[E]] struct {
	tree    *avlTree[E]
	current E
}

// Valid reports whether the cursor rests on an element.
func (it *Iterator[E]) Valid() bool {
	var zero E
	return it.tree != nil && it.current != zero
}

// Elem returns the element under the cursor, or the zero E at the
// sentinel.
func (it *Iterator[E]) Elem() E {
	return it.current
}

// Next advances to the in-order successor. At the sentinel it stays put.
func (it *Iterator[E]) Next() {
	var zero E
	if it.current != zero {
		it.current = Next(it.current)
	}
}

// Prev steps to the in-order predecessor. From the sentinel it lands on
// the tree maximum, which is what makes reverse traversal from End()
// work; from the minimum it degrades to the sentinel.
func (it *Iterator[E]) Prev() {
	var zero E
	if it.current != zero {
		it.current = Prev(it.current)
		return
	}
	if it.tree == nil {
		return
	}
	it.current = Maximum(it.tree.root)
}

func (it *Iterator[E]) Equal(rhs Iterator[E]) bool {
	return it.tree == rhs.tree && it.current == rhs.current
}

package tree

// AVLNode is the linkage unit embedded inside an element. The zero value
// is ready to use; insertion overwrites every field. The element that
// embeds the node owns the storage, the tree only owns the links.
type AVLNode[E comparable] struct {
	parent E
	left   E
	right  E
	height int64
}

func (node *AVLNode[E]) Parent() E { return node.parent }

func (node *AVLNode[E]) Left() E { return node.left }

func (node *AVLNode[E]) Right() E { return node.right }

// Height is the cached subtree height: 1 for a leaf, 0 conventionally
// for an absent subtree.
func (node *AVLNode[E]) Height() int64 { return node.height }

// updateHeight recomputes e's cached height from its children.
func updateHeight[E NodeEmbedder[E]](e E) {
	n := e.AVLNode()
	n.height = max(heightOf(n.left), heightOf(n.right)) + 1
}

// heightOf tolerates the zero E so absent children read as height 0.
func heightOf[E NodeEmbedder[E]](e E) int64 {
	var zero E
	if e == zero {
		return 0
	}
	return e.AVLNode().height
}

// Minimum returns the leftmost element of the subtree rooted at e.
func Minimum[E NodeEmbedder[E]](e E) E {
	var zero E
	if e == zero {
		return zero
	}
	for e.AVLNode().left != zero {
		e = e.AVLNode().left
	}
	return e
}

// Maximum returns the rightmost element of the subtree rooted at e.
func Maximum[E NodeEmbedder[E]](e E) E {
	var zero E
	if e == zero {
		return zero
	}
	for e.AVLNode().right != zero {
		e = e.AVLNode().right
	}
	return e
}

// Next returns the in-order successor of e, or the zero E past the
// maximum. It walks the linkage only: down to the leftmost element of the
// right subtree when one exists, otherwise up until arriving from a left
// child. Amortized O(1) across a full traversal.
func Next[E NodeEmbedder[E]](e E) E {
	var zero E
	if r := e.AVLNode().right; r != zero {
		return Minimum(r)
	}
	for {
		last := e
		e = e.AVLNode().parent
		if e == zero {
			return zero
		}
		if e.AVLNode().left == last {
			return e
		}
	}
}

// Prev is the mirror of Next: the in-order predecessor of e, or the zero
// E before the minimum.
func Prev[E NodeEmbedder[E]](e E) E {
	var zero E
	if l := e.AVLNode().left; l != zero {
		return Maximum(l)
	}
	for {
		last := e
		e = e.AVLNode().parent
		if e == zero {
			return zero
		}
		if e.AVLNode().right == last {
			return e
		}
	}
}

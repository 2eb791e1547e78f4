package tree

import (
	"sync/atomic"
)

// References:
// https://github.com/skywind3000/avlmini
// https://en.wikipedia.org/wiki/AVL_tree
// AVL properties:
// p1. Binary search order. Every element in a left subtree sorts before
//   the subtree root, every element in a right subtree sorts after it.
// p2. Balance bound. For every element,
//   |height(left) - height(right)| <= 1.
// p3. Height cache. Every element caches
//   height = max(height(left), height(right)) + 1, with 0 for an absent
//   subtree. The cache is what lets the rebalance walk stop as soon as a
//   recomputed height matches the stored one and the balance factor is
//   back in range.

type avlTree[E NodeEmbedder[E]] struct {
	root  E
	count int64
	less  LessFunc[E]
}

func (tree *avlTree[E]) Len() int64 {
	return atomic.LoadInt64(&tree.count)
}

func (tree *avlTree[E]) IsEmpty() bool {
	var zero E
	return tree.root == zero
}

func (tree *avlTree[E]) Root() E {
	return tree.root
}

func (tree *avlTree[E]) Front() E {
	return Minimum(tree.root)
}

func (tree *avlTree[E]) Back() E {
	return Maximum(tree.root)
}

func (tree *avlTree[E]) Less(a, b E) bool {
	return tree.less(a, b)
}

// replaceAsChild rewires the grandparent (or the root reference) so that
// child takes occupant's place under parent. Neither node's own links are
// touched.
func (tree *avlTree[E]) replaceAsChild(occupant, child, parent E) {
	var zero E
	if parent == zero {
		tree.root = child
		return
	}
	pn := parent.AVLNode()
	if pn.left == occupant {
		pn.left = child
	} else {
		pn.right = child
	}
}

/*
	  |                       |
	  X                       R
	 / \    leftRotate(X)    / \
	A   R   ============>   X   C
	   / \                 / \
	  B   C               A   B

Heights of X and R are left stale; the caller recomputes them
innermost first.
*/
func (tree *avlTree[E]) leftRotate(x E) E {
	var zero E
	xn := x.AVLNode()
	r, parent := xn.right, xn.parent
	if r == zero {
		// impossible run to here
		panic( /* debug assertion */ "[avl-tree] left rotate without right child")
	}
	rn := r.AVLNode()

	xn.right = rn.left
	if xn.right != zero {
		xn.right.AVLNode().parent = x
	}

	rn.left = x
	rn.parent = parent
	tree.replaceAsChild(x, r, parent)
	xn.parent = r
	return r
}

/*
	    |                        |
	    X                        L
	   / \    rightRotate(X)    / \
	  L   C   =============>   A   X
	 / \                          / \
	A   B                        B   C
*/
func (tree *avlTree[E]) rightRotate(x E) E {
	var zero E
	xn := x.AVLNode()
	l, parent := xn.left, xn.parent
	if l == zero {
		// impossible run to here
		panic( /* debug assertion */ "[avl-tree] right rotate without left child")
	}
	ln := l.AVLNode()

	xn.left = ln.right
	if ln.right != zero {
		ln.right.AVLNode().parent = x
	}

	ln.right = x
	ln.parent = parent
	tree.replaceAsChild(x, l, parent)
	xn.parent = l
	return l
}

// fixLeft restores balance at x when its right subtree is taller by two.
// If the right child leans left, it is rotated right first (the RL double
// rotation), then x is rotated left. Returns the new subtree root.
func (tree *avlTree[E]) fixLeft(x E) E {
	r := x.AVLNode().right
	rn := r.AVLNode()
	if heightOf(rn.left) > heightOf(rn.right) {
		r = tree.rightRotate(r)
		updateHeight(r.AVLNode().right)
		updateHeight(r)
	}
	top := tree.leftRotate(x)
	updateHeight(top.AVLNode().left)
	updateHeight(top)
	return top
}

// fixRight is the mirror of fixLeft: x's left subtree is taller by two.
func (tree *avlTree[E]) fixRight(x E) E {
	l := x.AVLNode().left
	ln := l.AVLNode()
	if heightOf(ln.left) < heightOf(ln.right) {
		l = tree.leftRotate(l)
		updateHeight(l.AVLNode().left)
		updateHeight(l)
	}
	top := tree.rightRotate(x)
	updateHeight(top.AVLNode().right)
	updateHeight(top)
	return top
}

// rebalance walks from start toward the root. The ascent stops at the
// first element whose recomputed height equals the cached one while the
// balance factor is still in range; every ancestor above it is then
// provably unaffected. Height alone is not a safe stop: erasing from the
// shorter subtree leaves the height untouched yet drives the factor to
// two, so the balance check is part of the exit condition.
func (tree *avlTree[E]) rebalance(start E) {
	var zero E
	for e := start; e != zero; e = e.AVLNode().parent {
		n := e.AVLNode()
		hl, hr := heightOf(n.left), heightOf(n.right)
		height := max(hl, hr) + 1
		diff := hl - hr
		if n.height == height && diff >= -1 && diff <= 1 {
			break
		}
		n.height = height

		if diff <= -2 {
			e = tree.fixLeft(e)
		} else if diff >= 2 {
			e = tree.fixRight(e)
		}
	}
}

// fixInsert finalizes a freshly spliced leaf: the parent link is already
// set by the insert descent, the rest of the node is reset here. A leaf
// is always balanced, so the rebalance walk starts at its parent.
func (tree *avlTree[E]) fixInsert(e E) {
	var zero E
	n := e.AVLNode()
	n.left, n.right = zero, zero
	n.height = 1
	if n.parent != zero {
		tree.rebalance(n.parent)
	}
}

func (tree *avlTree[E]) attachRoot(e E) {
	var zero E
	n := e.AVLNode()
	n.parent, n.left, n.right = zero, zero, zero
	n.height = 1
	tree.root = e
}

func (tree *avlTree[E]) InsertUnique(e E) bool {
	var zero E
	if tree.root == zero {
		tree.attachRoot(e)
		atomic.AddInt64(&tree.count, 1)
		return true
	}

	for current := tree.root; ; {
		cn := current.AVLNode()
		if tree.less(e, current) {
			if cn.left != zero {
				current = cn.left
				continue
			}
			cn.left = e
		} else if tree.less(current, e) {
			if cn.right != zero {
				current = cn.right
				continue
			}
			cn.right = e
		} else {
			// Equal element already linked.
			return false
		}
		e.AVLNode().parent = current
		tree.fixInsert(e)
		atomic.AddInt64(&tree.count, 1)
		return true
	}
}

// replace splices e into victim's exact structural position. Pure link
// surgery, O(1): the shape of the tree is unchanged, so no rebalance.
func (tree *avlTree[E]) replace(victim, e E) {
	var zero E
	vn, en := victim.AVLNode(), e.AVLNode()

	tree.replaceAsChild(victim, e, vn.parent)
	if vn.left != zero {
		vn.left.AVLNode().parent = e
	}
	if vn.right != zero {
		vn.right.AVLNode().parent = e
	}
	en.parent = vn.parent
	en.left = vn.left
	en.right = vn.right
	en.height = vn.height
}

func (tree *avlTree[E]) InsertOrReplace(e E) E {
	var zero E
	if tree.root == zero {
		tree.attachRoot(e)
		atomic.AddInt64(&tree.count, 1)
		return zero
	}

	for current := tree.root; ; {
		cn := current.AVLNode()
		if tree.less(e, current) {
			if cn.left != zero {
				current = cn.left
				continue
			}
			cn.left = e
		} else if tree.less(current, e) {
			if cn.right != zero {
				current = cn.right
				continue
			}
			cn.right = e
		} else {
			tree.replace(current, e)
			return current
		}
		e.AVLNode().parent = current
		tree.fixInsert(e)
		atomic.AddInt64(&tree.count, 1)
		return zero
	}
}

func (tree *avlTree[E]) InsertMulti(e E) {
	var zero E
	if tree.root == zero {
		tree.attachRoot(e)
		atomic.AddInt64(&tree.count, 1)
		return
	}

	for current := tree.root; ; {
		cn := current.AVLNode()
		if tree.less(e, current) {
			if cn.left != zero {
				current = cn.left
				continue
			}
			cn.left = e
		} else if tree.less(current, e) {
			if cn.right != zero {
				current = cn.right
				continue
			}
			cn.right = e
		} else {
			// Equal key. Prefer the shallower subtree so runs of
			// duplicates do not degrade the balance; the choice is
			// observable through iteration order among equal keys.
			if cn.left == zero {
				cn.left = e
			} else if cn.right == zero {
				cn.right = e
			} else {
				if heightOf(cn.left) < heightOf(cn.right) {
					current = cn.left
				} else {
					current = cn.right
				}
				continue
			}
		}
		e.AVLNode().parent = current
		tree.fixInsert(e)
		atomic.AddInt64(&tree.count, 1)
		return
	}
}

func (tree *avlTree[E]) Erase(e E) {
	var zero E
	var child, parent E

	n := e.AVLNode()
	if n.left != zero && n.right != zero {
		// Two children: detach the in-order successor from the right
		// subtree, then splice it into e's structural position.
		succ := Minimum(n.right)
		sn := succ.AVLNode()

		child = sn.right
		parent = sn.parent
		if child != zero {
			child.AVLNode().parent = parent
		}
		tree.replaceAsChild(succ, child, parent)

		// When the successor was e's direct right child the detachment
		// point collapses onto the successor itself, and that is where
		// the rebalance walk has to start.
		if sn.parent == e {
			parent = succ
		}

		sn.left = n.left
		sn.right = n.right
		sn.parent = n.parent
		sn.height = n.height

		tree.replaceAsChild(e, succ, n.parent)
		n.left.AVLNode().parent = succ
		if n.right != zero {
			n.right.AVLNode().parent = succ
		}
	} else {
		if n.left == zero {
			child = n.right
		} else {
			child = n.left
		}
		parent = n.parent
		tree.replaceAsChild(e, child, parent)
		if child != zero {
			child.AVLNode().parent = parent
		}
	}

	if parent != zero {
		tree.rebalance(parent)
	}
	atomic.AddInt64(&tree.count, -1)
}

// Clear visits elements in pre-order with an explicit work-list, so the
// walk never grows the call stack even for trees far larger than the AVL
// height bound would suggest. Both children are captured before handler
// runs, which leaves handler free to wipe or reuse the element.
func (tree *avlTree[E]) Clear(handler func(E)) {
	var zero E
	if tree.root == zero {
		return
	}

	stack := make([]E, 0, heightOf(tree.root)+1)
	stack = append(stack, tree.root)
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := e.AVLNode()
		left, right := n.left, n.right
		if handler != nil {
			handler(e)
		}
		if right != zero {
			stack = append(stack, right)
		}
		if left != zero {
			stack = append(stack, left)
		}
	}

	tree.root = zero
	atomic.StoreInt64(&tree.count, 0)
}

func (tree *avlTree[E]) Release() {
	tree.Clear(nil)
}

func (tree *avlTree[E]) Find(probe E) E {
	var zero E
	for e := tree.root; e != zero; {
		if tree.less(probe, e) {
			e = e.AVLNode().left
		} else if tree.less(e, probe) {
			e = e.AVLNode().right
		} else {
			return e
		}
	}
	return zero
}

func (tree *avlTree[E]) FindFunc(cmp func(e E) int64) E {
	var zero E
	for e := tree.root; e != zero; {
		res := cmp(e)
		if res == 0 {
			return e
		} else if res > 0 {
			e = e.AVLNode().right
		} else {
			e = e.AVLNode().left
		}
	}
	return zero
}

func (tree *avlTree[E]) Begin() Iterator[E] {
	return Iterator[E]{tree: tree, current: tree.Front()}
}

func (tree *avlTree[E]) End() Iterator[E] {
	return Iterator[E]{tree: tree}
}

// Inorder traversal with an explicit stack, bounded by the tree height.
func (tree *avlTree[E]) Foreach(action func(idx int64, e E) bool) {
	var zero E
	if tree.root == zero {
		return
	}

	stack := make([]E, 0, heightOf(tree.root)+1)
	for e := tree.root; e != zero; e = e.AVLNode().left {
		stack = append(stack, e)
	}

	idx := int64(0)
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !action(idx, e) {
			return
		}
		idx++
		for aux := e.AVLNode().right; aux != zero; aux = aux.AVLNode().left {
			stack = append(stack, aux)
		}
	}
}

type AVLTreeOpt[E NodeEmbedder[E]] func(*avlTree[E])

// WithAVLTreeDesc flips the element order so iteration runs from the
// greatest element to the least.
func WithAVLTreeDesc[E NodeEmbedder[E]]() AVLTreeOpt[E] {
	return func(tree *avlTree[E]) {
		asc := tree.less
		tree.less = func(a, b E) bool {
			return asc(b, a)
		}
	}
}

// NewAVLTree builds an empty tree ordered by less. The comparator must be
// a strict weak ordering; it is stored as a plain field and consulted on
// every descent.
func NewAVLTree[E NodeEmbedder[E]](less LessFunc[E], opts ...AVLTreeOpt[E]) AVLTree[E] {
	if less == nil {
		panic("[avl-tree] nil element comparator")
	}
	tree := &avlTree[E]{
		less: less,
	}
	for _, o := range opts {
		o(tree)
	}
	return tree
}

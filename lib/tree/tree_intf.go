package tree

import "errors"

var (
	ErrAVLTreeOrderViolation   = errors.New("[avl-tree] binary search order violation")
	ErrAVLTreeBalanceViolation = errors.New("[avl-tree] balance factor violation")
	ErrAVLTreeHeightViolation  = errors.New("[avl-tree] cached height violation")
	ErrAVLTreeParentViolation  = errors.New("[avl-tree] parent link violation")
)

// NodeEmbedder is the intrusive embedding contract. An element type E
// (a pointer type in practice) embeds an AVLNode[E] in its own storage
// and hands the tree access to it:
//
//	type orderEntry struct {
//		link  tree.AVLNode[*orderEntry]
//		price int64
//	}
//
//	func (e *orderEntry) AVLNode() *tree.AVLNode[*orderEntry] { return &e.link }
//
// The tree never allocates or frees element storage. It only links and
// unlinks the embedded node.
type NodeEmbedder[E comparable] interface {
	comparable
	AVLNode() *AVLNode[E]
}

// LessFunc reports whether a sorts before b. It must satisfy strict weak
// ordering or the search and balance invariants are violated silently.
type LessFunc[E comparable] func(a, b E) bool

// AVLTree is a height-balanced binary search tree over caller-owned
// elements. All operations are single-threaded; callers provide external
// synchronization if the tree is shared.
//
// Erasing an element that is not linked into this tree, or inserting an
// element that is already linked, corrupts the linkage. Neither is checked
// on the hot path.
type AVLTree[E NodeEmbedder[E]] interface {
	Len() int64
	IsEmpty() bool
	Root() E
	// Front returns the minimum element, or the zero E if the tree is empty.
	Front() E
	// Back returns the maximum element, or the zero E if the tree is empty.
	Back() E
	// Less reports the tree's element order.
	Less(a, b E) bool
	// InsertUnique links e into the tree. It returns false and leaves the
	// tree untouched if an equal element is already present.
	InsertUnique(e E) bool
	// InsertOrReplace links e into the tree. If an equal element is present,
	// e is spliced into its exact structural position in O(1) and the
	// displaced element is returned for disposal; otherwise the zero E is
	// returned and the size grows by one.
	InsertOrReplace(e E) E
	// InsertMulti links e into the tree, permitting duplicate keys. On an
	// equal key the descent continues into the shallower child subtree
	// (left wins ties only when strictly shallower) so duplicates do not
	// pile up on one side.
	InsertMulti(e E)
	// Erase unlinks e. e must currently be linked into this tree.
	Erase(e E)
	// Clear unlinks every element, invoking handler exactly once per element
	// in pre-order before that element's children are visited. The element's
	// own linkage fields still hold their pre-clear values at call time; the
	// handler may repurpose the element freely.
	Clear(handler func(E))
	// Release unlinks every element without a disposal callback.
	Release()
	// Find returns the element equal to probe under the tree order, or the
	// zero E if absent.
	Find(probe E) E
	// FindFunc descends by the sign of cmp: negative means the wanted key
	// sorts before the visited element, positive after, zero is a match.
	// The probe lives in the closure, so its type is free to differ from E.
	FindFunc(cmp func(e E) int64) E
	Begin() Iterator[E]
	End() Iterator[E]
	// Foreach walks the elements in order until action returns false.
	Foreach(action func(idx int64, e E) bool)
}

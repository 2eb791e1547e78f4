package set

import (
	"github.com/avlkit/xtree/lib/infra"
	"github.com/avlkit/xtree/lib/tree"
)

// setNode is the embedding type of the wrapper: the tree linkage plus
// the key payload, allocated and released by the set alone.
type setNode[K infra.OrderedKey] struct {
	link tree.AVLNode[*setNode[K]]
	key  K
}

func (node *setNode[K]) AVLNode() *tree.AVLNode[*setNode[K]] {
	return &node.link
}

type treeSet[K infra.OrderedKey] struct {
	elements tree.AVLTree[*setNode[K]]
	kcmp     infra.OrderedKeyComparator[K]
}

func defaultKeyComparator[K infra.OrderedKey]() infra.OrderedKeyComparator[K] {
	return func(i, j K) int64 {
		if i == j {
			return 0
		} else if i < j {
			return -1
		}
		return 1
	}
}

func (s *treeSet[K]) Len() int64 {
	return s.elements.Len()
}

func (s *treeSet[K]) IsEmpty() bool {
	return s.elements.IsEmpty()
}

func (s *treeSet[K]) Add(key K) bool {
	return s.elements.InsertUnique(&setNode[K]{key: key})
}

// lookup drives the tree's three-way descent with a bare key instead of
// a node, so probing never allocates.
func (s *treeSet[K]) lookup(key K) *setNode[K] {
	return s.elements.FindFunc(func(node *setNode[K]) int64 {
		return s.kcmp(key, node.key)
	})
}

func (s *treeSet[K]) Contains(key K) bool {
	return s.lookup(key) != nil
}

func (s *treeSet[K]) Count(key K) int64 {
	if s.lookup(key) == nil {
		return 0
	}
	return 1
}

func (s *treeSet[K]) Remove(key K) error {
	if s.elements.IsEmpty() {
		return infra.WrapErrorStackWithMessage(ErrTreeSetIsEmpty, "remove key from tree set")
	}
	node := s.lookup(key)
	if node == nil {
		return infra.WrapErrorStackWithMessage(ErrTreeSetKeyNotFound, "remove key from tree set")
	}
	s.elements.Erase(node)
	return nil
}

func (s *treeSet[K]) RemoveMin() (K, error) {
	_min := s.elements.Front()
	if _min == nil {
		var zero K
		return zero, infra.WrapErrorStackWithMessage(ErrTreeSetIsEmpty, "remove min key from tree set")
	}
	s.elements.Erase(_min)
	return _min.key, nil
}

func (s *treeSet[K]) Min() (K, bool) {
	if _min := s.elements.Front(); _min != nil {
		return _min.key, true
	}
	var zero K
	return zero, false
}

func (s *treeSet[K]) Max() (K, bool) {
	if _max := s.elements.Back(); _max != nil {
		return _max.key, true
	}
	var zero K
	return zero, false
}

func (s *treeSet[K]) Foreach(action func(idx int64, key K) bool) {
	s.elements.Foreach(func(idx int64, node *setNode[K]) bool {
		return action(idx, node.key)
	})
}

func (s *treeSet[K]) Release() {
	s.elements.Clear(func(node *setNode[K]) {
		node.link = tree.AVLNode[*setNode[K]]{}
	})
}

type TreeSetOpt[K infra.OrderedKey] func(*treeSet[K])

// WithTreeSetKeyComparator substitutes the natural key order.
func WithTreeSetKeyComparator[K infra.OrderedKey](kcmp infra.OrderedKeyComparator[K]) TreeSetOpt[K] {
	return func(s *treeSet[K]) {
		s.kcmp = kcmp
	}
}

func NewTreeSet[K infra.OrderedKey](opts ...TreeSetOpt[K]) TreeSet[K] {
	s := &treeSet[K]{
		kcmp: defaultKeyComparator[K](),
	}
	for _, o := range opts {
		o(s)
	}
	s.elements = tree.NewAVLTree[*setNode[K]](func(a, b *setNode[K]) bool {
		return s.kcmp(a.key, b.key) < 0
	})
	return s
}

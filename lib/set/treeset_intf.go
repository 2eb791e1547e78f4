package set

import "errors"

var (
	ErrTreeSetKeyNotFound = errors.New("[tree-set] key not found")
	ErrTreeSetIsEmpty     = errors.New("[tree-set] there is no element")
)

// TreeSet is an ordered set of keys. Unlike the underlying intrusive
// tree, the set owns its node storage: every Add allocates the embedding
// node, every Remove and Release unlinks it, so the tree's structural
// preconditions are satisfied by construction.
//
// Not thread safe. Callers provide external synchronization.
type TreeSet[K comparable] interface {
	Len() int64
	IsEmpty() bool
	// Add links key into the set. It returns false if the key is already
	// present.
	Add(key K) bool
	Contains(key K) bool
	Count(key K) int64
	// Remove unlinks key. ErrTreeSetKeyNotFound is wrapped into the error
	// when the key is absent.
	Remove(key K) error
	// RemoveMin unlinks and returns the smallest key.
	RemoveMin() (K, error)
	// Min and Max report the boundary keys; the bool is false on an empty
	// set.
	Min() (K, bool)
	Max() (K, bool)
	// Foreach walks the keys in order until action returns false.
	Foreach(action func(idx int64, key K) bool)
	// Release unlinks every key.
	Release()
}

package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildCorruptibleTree(t *testing.T) (AVLTree[*xItem], map[int64]*xItem) {
	t.Helper()
	tree := newXItemTree()
	items := make(map[int64]*xItem, 16)
	for _, v := range []int64{8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7} {
		e := &xItem{val: v}
		items[v] = e
		require.True(t, tree.InsertUnique(e))
	}
	requireHealthy(t, tree)
	return tree, items
}

func TestValidators_EmptyTree(t *testing.T) {
	tree := newXItemTree()
	require.NoError(t, OrderViolationValidate(tree))
	require.NoError(t, BalanceViolationValidate(tree))
	require.NoError(t, HeightViolationValidate(tree))
	require.NoError(t, ParentViolationValidate(tree))
}

func TestOrderViolationValidate_Corrupted(t *testing.T) {
	tree, _ := buildCorruptibleTree(t)

	// Swap two payloads without touching the linkage.
	a := tree.Find(&xItem{val: 2})
	b := tree.Find(&xItem{val: 14})
	a.val, b.val = b.val, a.val
	require.ErrorIs(t, OrderViolationValidate(tree), ErrAVLTreeOrderViolation)
}

func TestHeightViolationValidate_Corrupted(t *testing.T) {
	tree, items := buildCorruptibleTree(t)
	items[3].link.height = 40
	require.ErrorIs(t, HeightViolationValidate(tree), ErrAVLTreeHeightViolation)
}

func TestBalanceViolationValidate_Corrupted(t *testing.T) {
	tree, items := buildCorruptibleTree(t)
	// A leaf pretending to carry a deep subtree unbalances its parent.
	items[1].link.height = 5
	require.ErrorIs(t, BalanceViolationValidate(tree), ErrAVLTreeBalanceViolation)
}

func TestParentViolationValidate_Corrupted(t *testing.T) {
	tree, items := buildCorruptibleTree(t)
	items[1].link.parent = items[14]
	require.ErrorIs(t, ParentViolationValidate(tree), ErrAVLTreeParentViolation)

	tree2, _ := buildCorruptibleTree(t)
	tree2.Root().link.parent = tree2.Root().link.Left()
	require.ErrorIs(t, ParentViolationValidate(tree2), ErrAVLTreeParentViolation)
}

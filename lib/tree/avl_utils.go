package tree

// AVL rule validation utilities. Exported so that containers building on
// the tree can assert structural health in their own tests.

// Inorder traversal to validate the binary search order. Equal neighbors
// are tolerated because InsertMulti links duplicates.
func OrderViolationValidate[E NodeEmbedder[E]](tree AVLTree[E]) error {
	var last E
	violated := false
	tree.Foreach(func(idx int64, e E) bool {
		if idx > 0 && tree.Less(e, last) {
			violated = true
			return false
		}
		last = e
		return true
	})
	if violated {
		return ErrAVLTreeOrderViolation
	}
	return nil
}

// BalanceViolationValidate checks |height(left) - height(right)| <= 1 at
// every element reachable from the root.
func BalanceViolationValidate[E NodeEmbedder[E]](tree AVLTree[E]) error {
	return walkValidate(tree.Root(), func(e E) error {
		n := e.AVLNode()
		if diff := heightOf(n.left) - heightOf(n.right); diff < -1 || diff > 1 {
			return ErrAVLTreeBalanceViolation
		}
		return nil
	})
}

// HeightViolationValidate checks that every cached height equals
// max(child heights) + 1.
func HeightViolationValidate[E NodeEmbedder[E]](tree AVLTree[E]) error {
	return walkValidate(tree.Root(), func(e E) error {
		n := e.AVLNode()
		if n.height != max(heightOf(n.left), heightOf(n.right))+1 {
			return ErrAVLTreeHeightViolation
		}
		return nil
	})
}

// ParentViolationValidate checks back-reference consistency: each child
// points back at the element it hangs under, and the root has no parent.
func ParentViolationValidate[E NodeEmbedder[E]](tree AVLTree[E]) error {
	var zero E
	root := tree.Root()
	if root != zero && root.AVLNode().parent != zero {
		return ErrAVLTreeParentViolation
	}
	return walkValidate(root, func(e E) error {
		n := e.AVLNode()
		if n.left != zero && n.left.AVLNode().parent != e {
			return ErrAVLTreeParentViolation
		}
		if n.right != zero && n.right.AVLNode().parent != e {
			return ErrAVLTreeParentViolation
		}
		return nil
	})
}

// walkValidate applies check to every reachable element, pre-order, with
// an explicit stack.
func walkValidate[E NodeEmbedder[E]](root E, check func(e E) error) error {
	var zero E
	if root == zero {
		return nil
	}

	stack := []E{root}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := check(e); err != nil {
			return err
		}
		n := e.AVLNode()
		if n.right != zero {
			stack = append(stack, n.right)
		}
		if n.left != zero {
			stack = append(stack, n.left)
		}
	}
	return nil
}

package ebtree

// WalkDown descends from l, always taking the given side, until it reaches
// a link tagged [IsLeaf], and returns the node it addresses. It returns nil
// if l is nil.
func WalkDown[N any, P Branches[N]](l Link[N], side Side) *N {
	for l.IsInner() {
		n := l.node()
		l = P(n).Links()[side]
	}
	if l.IsNil() {
		return nil
	}
	return l.node()
}

// First returns the leaf holding the smallest key in the tree, or nil if
// the tree is empty.
func First[N any, P Branches[N]](root *Root[N]) *N {
	return WalkDown[N, P](root.root(), Left)
}

// Last returns the leaf holding the largest key in the tree, or nil if the
// tree is empty.
func Last[N any, P Branches[N]](root *Root[N]) *N {
	return WalkDown[N, P](root.root(), Right)
}

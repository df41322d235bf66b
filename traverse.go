package ebtree

// parentLinks returns the [2]Link[N] array addressed by t, whether that
// address belongs to a real node's [Header] or to root itself. Comparing
// raw addresses is always well-defined in Go, unlike casting the address
// to *N when it might actually be a *Root[N] — this is the one place that
// ambiguity is resolved, and it is resolved without ever type-punning
// between the two.
func parentLinks[N any, P Branches[N]](root *Root[N], t Link[N]) *[2]Link[N] {
	if t.IsRoot(root) {
		return &root.links
	}
	return P(t.node()).Links()
}

// Next returns the in-order successor of node: the next leaf in increasing
// key order, or nil if node holds the largest key in the tree. Among
// leaves sharing a key, Next visits them in insertion order.
func Next[N any, P Branches[N]](root *Root[N], node *N) *N {
	t := *P(node).LeafParent()
	for t.Side() == Right {
		if t.IsRoot(root) {
			return nil
		}
		t = *P(t.node()).NodeParent()
	}
	if t.IsRoot(root) {
		return nil
	}
	sibling := parentLinks[N, P](root, t)[Right]
	return WalkDown[N, P](sibling, Left)
}

// Prev returns the in-order predecessor of node: the previous leaf in
// increasing key order, or nil if node holds the smallest key in the tree.
// Among leaves sharing a key, Prev visits them in reverse insertion order.
func Prev[N any, P Branches[N]](root *Root[N], node *N) *N {
	t := *P(node).LeafParent()
	for t.Side() == Left {
		if t.IsRoot(root) {
			return nil
		}
		t = *P(t.node()).NodeParent()
	}
	if t.IsRoot(root) {
		return nil
	}
	sibling := parentLinks[N, P](root, t)[Left]
	return WalkDown[N, P](sibling, Right)
}

// NextUnique returns the first leaf holding a key greater than node's,
// skipping over any further duplicates of node's own key, or nil if none
// exists. key extracts the comparison key from a node.
//
// This walks Next repeatedly rather than climbing out of a duplicate
// subtree in one hop by inspecting ancestor bit indices: an ancestor
// reached that way could be the root sentinel itself, and reading a bit
// index through that address would require the same unsafe type-pun
// [parentLinks] exists to avoid. The cost is proportional to the number of
// duplicates at node's key rather than constant.
func NextUnique[N any, P Branches[N], K comparable](root *Root[N], node *N, key func(*N) K) *N {
	k := key(node)
	for {
		node = Next[N, P](root, node)
		if node == nil || key(node) != k {
			return node
		}
	}
}

// PrevUnique returns the last leaf holding a key less than node's, skipping
// over any further duplicates of node's own key, or nil if none exists.
// See [NextUnique] for why this is not an O(1) chain skip.
func PrevUnique[N any, P Branches[N], K comparable](root *Root[N], node *N, key func(*N) K) *N {
	k := key(node)
	for {
		node = Prev[N, P](root, node)
		if node == nil || key(node) != k {
			return node
		}
	}
}

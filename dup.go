package ebtree

// InsertDuplicate links newNode into the duplicate-key subtree anchored at
// sub, the node descent stopped at upon finding a key already present in
// the tree. sub occupies parentArr[parentSide] — the link through which
// its ordinary-tree ancestor reaches it — before this call; afterward that
// slot leads to the (possibly deeper) duplicate chain with newNode as its
// newest member.
//
// sub is either an ordinary tree node (this is the first duplicate ever
// seen for this key, signalled by a non-negative Bit — sub may well have
// branched already, just never as a duplicate-chain member) or the top of
// an existing negative-bit chain. Either way this builds or extends a
// right-leaning chain whose in-order walk visits members in insertion
// order: each splice makes the previous top (or a reused gap left by an
// earlier deletion) the left child and the new node its own right child,
// self-referenced, so the newest duplicate is always reachable by walking
// right.
func InsertDuplicate[N any, P Branches[N]](
	parentArr *[2]Link[N], parentSide Side,
	sub, newNode *N,
) {
	psub := P(sub)

	if *psub.Bit() >= 0 {
		// sub is not yet part of a duplicate chain: it is an ordinary node
		// (leaf or inner) about to become a duplicate-root.
		Thread[N, P](parentArr, parentSide, sub, IsLeaf, Left, newNode, -1)
		return
	}

	// sub is the top of an existing chain (bit < 0). Walk its right
	// spine, which is self-referencing at the current newest member,
	// looking for either room directly above that member or a gap left by
	// a prior deletion (child.bit strictly more than one above its
	// parent's).
	top, topArr, topSide := sub, parentArr, parentSide
	cur := sub
	var holeArr *[2]Link[N]
	var holeSide Side
	var holeNode *N

	for {
		pcur := P(cur)
		right := pcur.Links()[Right]
		if !right.IsInner() {
			leaf := right.node()
			if *pcur.Bit() < -1 {
				Thread[N, P](pcur.Links(), Right, leaf, IsLeaf, Left, newNode, -1)
				return
			}
			break
		}

		child := right.node()
		pchild := P(child)
		if *pchild.Bit() > *pcur.Bit()+1 {
			holeArr, holeSide, holeNode = pcur.Links(), Right, child
		}
		cur = child
	}

	newBit := *psub.Bit() - 1
	if holeNode != nil {
		Thread[N, P](holeArr, holeSide, holeNode, IsInner, Left, newNode, newBit)
		return
	}
	Thread[N, P](topArr, topSide, top, IsInner, Left, newNode, newBit)
}

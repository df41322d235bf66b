package ebtree

import "unsafe"

// Thread inserts newNode into the tree at the position currently held by
// old, which is addressed as parentArr[parentSide] and currently plays
// role oldKind (leaf or inner) there. newNode takes over that position in
// its inner role; old becomes newNode's child on oldSide, and newNode
// occupies the other child as its own leaf — the single physical node
// serving double duty that lets every insertion avoid allocating a
// separate branch object.
//
// This is the one place a new node is threaded into existing structure,
// and it is shared by every key flavor's ordinary insertion (bit >= 0) and
// by duplicate-chain insertion (bit < 0, see [InsertDuplicate]): both
// reduce to "old moves down one level, newNode takes its place and
// references itself."
func Thread[N any, P Branches[N]](
	parentArr *[2]Link[N], parentSide Side,
	old *N, oldKind Kind, oldSide Side,
	newNode *N, bit int,
) {
	pnew := P(newNode)
	pold := P(old)

	*pnew.Bit() = bit
	pnew.Links()[oldSide] = linkToAddr[N](unsafe.Pointer(old), uint8(oldKind))
	pnew.Links()[oldSide.Other()] = linkToAddr[N](unsafe.Pointer(newNode), uint8(IsLeaf))

	parentArr[parentSide] = linkToAddr[N](unsafe.Pointer(newNode), uint8(IsInner))

	if oldKind == IsInner {
		*pold.NodeParent() = linkToAddr[N](unsafe.Pointer(newNode), uint8(oldSide))
	} else {
		*pold.LeafParent() = linkToAddr[N](unsafe.Pointer(newNode), uint8(oldSide))
	}

	*pnew.LeafParent() = linkToAddr[N](unsafe.Pointer(newNode), uint8(oldSide.Other()))
	*pnew.NodeParent() = linkToAddr[N](unsafe.Pointer(parentArr), uint8(parentSide))
}

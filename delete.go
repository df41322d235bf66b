package ebtree

import (
	"unsafe"

	"github.com/sociomantic-tsunami/ebtree/internal/debug"
)

// Delete removes node from the tree rooted at root. It is a no-op if node
// is not currently linked into any tree, so repeated deletes of the same
// node are safe.
//
// Every step below only ever touches link fields through [Links],
// [NodeParent], [LeafParent], and [parentLinks] — never a key comparison —
// which is what lets this single implementation serve every node flavor.
func Delete[N any, P Branches[N]](root *Root[N], node *N) {
	pn := P(node)

	t := *pn.LeafParent()
	if t.IsNil() {
		return
	}

	side := t.Side()

	if t.IsRoot(root) {
		// node is the sole leaf directly under root: nothing else to fix up.
		debug.Assert(root.links[Left].addr() == unsafe.Pointer(node), "Delete: root's only child is not node")
		root.links[Left] = 0
		*pn.LeafParent() = 0
		return
	}

	parent := t.node()
	pp := P(parent)

	sibling := pp.Links()[side.Other()]
	debug.Assert(!sibling.IsNil(), "Delete: parent has no sibling child")

	g := *pp.NodeParent()
	gArr := parentLinks[N, P](root, g)
	gSide := g.Side()
	gArr[gSide] = sibling

	if sibling.IsInner() {
		*P(sibling.node()).NodeParent() = linkToAddr[N](unsafe.Pointer(gArr), uint8(gSide))
	} else if sib := sibling.node(); sib != nil {
		*P(sib).LeafParent() = linkToAddr[N](unsafe.Pointer(gArr), uint8(gSide))
	}

	*pp.NodeParent() = 0
	*pp.Bit() = 0

	if nodeInner := *pn.NodeParent(); !nodeInner.IsNil() && parent != node {
		// node also played an inner role: parent, now freed of its own inner
		// role, takes it over so node can be fully detached.
		*pp.Links() = *pn.Links()
		*pp.NodeParent() = nodeInner
		*pp.Bit() = *pn.Bit()

		upArr := parentLinks[N, P](root, nodeInner)
		upArr[nodeInner.Side()] = linkToAddr[N](unsafe.Pointer(parent), uint8(IsInner))

		for _, s := range [2]Side{Left, Right} {
			child := pp.Links()[s]
			if child.IsNil() {
				continue
			}
			newLink := linkToAddr[N](unsafe.Pointer(parent), uint8(s))
			if child.IsInner() {
				*P(child.node()).NodeParent() = newLink
			} else {
				*P(child.node()).LeafParent() = newLink
			}
		}
	}

	*pn.NodeParent() = 0
	*pn.Bit() = 0
	*pn.LeafParent() = 0
}

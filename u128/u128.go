// Package u128 implements an EBtree keyed by an unsigned 128-bit integer
// ([Uint128]). It duplicates, rather than shares, the descent engine the
// 32- and 64-bit flavors get from internal/inttree, since Go has no native
// machine type wide enough to drive that generic engine's shifts and
// comparisons for 128 bits.
package u128

import (
	"iter"

	"github.com/sociomantic-tsunami/ebtree"
)

// Node is a tree element keyed by Key. Embed it as the first field of a
// caller-defined struct to attach arbitrary payload; the tree never
// allocates or copies nodes.
type Node struct {
	ebtree.Header[Node]
	Key Uint128
}

// Tree is an EBtree of [Node] keyed by [Uint128].
type Tree struct {
	root ebtree.Root[Node]
}

// SetUnique switches the tree between unique-key and duplicates-allowed
// mode. Call it once before any insert.
func (t *Tree) SetUnique(unique bool) { t.root.SetUnique(unique) }

// Unique reports whether the tree rejects duplicate keys.
func (t *Tree) Unique() bool { return t.root.Unique() }

// Empty reports whether the tree holds no nodes.
func (t *Tree) Empty() bool { return t.root.Empty() }

// Insert links node into the tree by its Key field. If the tree is in
// unique mode and Key is already present, it returns the incumbent node
// and node stays out of the tree; otherwise it returns node.
func (t *Tree) Insert(node *Node) *Node {
	k := node.Key
	arr := t.root.Arr()

	if t.root.Empty() {
		arr[ebtree.Left] = ebtree.ChildLink(node, ebtree.IsLeaf)
		*node.LeafParent() = ebtree.LinkTo(arr, ebtree.Left)
		return node
	}

	parentArr, parentSide := arr, ebtree.Left
	cur := arr[ebtree.Left]

	var old *Node
	var oldKind ebtree.Kind

	for {
		if !cur.IsInner() {
			old = cur.Node()
			oldKind = ebtree.IsLeaf
			break
		}
		n := cur.Node()
		b := *n.Bit()
		if b < 0 {
			old = n
			oldKind = ebtree.IsInner
			break
		}
		if k.Xor(n.Key).Shr(uint(b)).ge2() {
			old = n
			oldKind = ebtree.IsInner
			break
		}
		side := ebtree.Side(k.bit(uint(b)))
		parentArr, parentSide = n.Links(), side
		cur = n.Links()[side]
	}

	if k.Equal(old.Key) {
		if t.root.Unique() {
			return old
		}
		ebtree.InsertDuplicate[Node, *Node](parentArr, parentSide, old, node)
		return node
	}

	b := k.Xor(old.Key).fls() - 1
	side := ebtree.Side(old.Key.bit(uint(b)))
	ebtree.Thread[Node, *Node](parentArr, parentSide, old, oldKind, side, node, b)
	return node
}

// Lookup returns the first (in insertion order) node with the given key,
// or nil.
func (t *Tree) Lookup(key Uint128) *Node {
	cur := t.root.Arr()[ebtree.Left]

	for cur.IsInner() {
		n := cur.Node()
		b := *n.Bit()
		if b < 0 {
			if n.Key.Equal(key) {
				return ebtree.WalkDown[Node, *Node](ebtree.ChildLink(n, ebtree.IsInner), ebtree.Left)
			}
			return nil
		}
		if key.Xor(n.Key).Shr(uint(b)).ge2() {
			return nil
		}
		cur = n.Links()[key.bit(uint(b))]
	}

	if cur.IsNil() {
		return nil
	}
	if leaf := cur.Node(); leaf.Key.Equal(key) {
		return leaf
	}
	return nil
}

func (t *Tree) descendToDivergence(needle Uint128) (stop *Node, stopArr *[2]ebtree.Link[Node], stopSide ebtree.Side, isInner bool) {
	arr := t.root.Arr()
	parentArr, parentSide := arr, ebtree.Left
	cur := arr[ebtree.Left]

	for cur.IsInner() {
		n := cur.Node()
		b := *n.Bit()
		if b < 0 {
			return n, parentArr, parentSide, true
		}
		if needle.Xor(n.Key).Shr(uint(b)).ge2() {
			return n, parentArr, parentSide, true
		}
		side := ebtree.Side(needle.bit(uint(b)))
		parentArr, parentSide = n.Links(), side
		cur = n.Links()[side]
	}

	leaf := cur.Node()
	return leaf, parentArr, parentSide, false
}

func ascend(root *ebtree.Root[Node], arr *[2]ebtree.Link[Node], side, stopSide, walkSide ebtree.Side) *Node {
	t := ebtree.LinkTo(arr, side)
	for t.Side() == stopSide {
		if t.IsRoot(root) {
			return nil
		}
		t = *t.Node().NodeParent()
	}
	if t.IsRoot(root) {
		return nil
	}
	sibling := t.Node().Links()[stopSide]
	return ebtree.WalkDown[Node, *Node](sibling, walkSide)
}

// LookupFloor returns the node with the greatest key <= needle, or nil.
func (t *Tree) LookupFloor(needle Uint128) *Node {
	if t.root.Empty() {
		return nil
	}
	stop, stopArr, stopSide, isInner := t.descendToDivergence(needle)
	if stop.Key.Equal(needle) {
		if isInner {
			return ebtree.WalkDown[Node, *Node](ebtree.ChildLink(stop, ebtree.IsInner), ebtree.Right)
		}
		return stop
	}
	if stop.Key.Less(needle) {
		kind := ebtree.IsLeaf
		if isInner {
			kind = ebtree.IsInner
		}
		return ebtree.WalkDown[Node, *Node](ebtree.ChildLink(stop, kind), ebtree.Right)
	}
	return ascend(&t.root, stopArr, stopSide, ebtree.Left, ebtree.Right)
}

// LookupCeil returns the node with the smallest key >= needle, or nil.
func (t *Tree) LookupCeil(needle Uint128) *Node {
	if t.root.Empty() {
		return nil
	}
	stop, stopArr, stopSide, isInner := t.descendToDivergence(needle)
	if stop.Key.Equal(needle) {
		if isInner {
			return ebtree.WalkDown[Node, *Node](ebtree.ChildLink(stop, ebtree.IsInner), ebtree.Left)
		}
		return stop
	}
	if needle.Less(stop.Key) {
		kind := ebtree.IsLeaf
		if isInner {
			kind = ebtree.IsInner
		}
		return ebtree.WalkDown[Node, *Node](ebtree.ChildLink(stop, kind), ebtree.Left)
	}
	return ascend(&t.root, stopArr, stopSide, ebtree.Right, ebtree.Left)
}

// First returns the node holding the smallest key, or nil if the tree is
// empty.
func (t *Tree) First() *Node { return ebtree.First[Node, *Node](&t.root) }

// Last returns the node holding the largest key, or nil if the tree is
// empty.
func (t *Tree) Last() *Node { return ebtree.Last[Node, *Node](&t.root) }

// Next returns node's in-order successor, or nil.
func (t *Tree) Next(node *Node) *Node { return ebtree.Next[Node, *Node](&t.root, node) }

// Prev returns node's in-order predecessor, or nil.
func (t *Tree) Prev(node *Node) *Node { return ebtree.Prev[Node, *Node](&t.root, node) }

func keyOf(n *Node) Uint128 { return n.Key }

// NextUnique returns the first node holding a key greater than node's,
// skipping any further duplicates of node's own key.
func (t *Tree) NextUnique(node *Node) *Node {
	return ebtree.NextUnique[Node, *Node, Uint128](&t.root, node, keyOf)
}

// PrevUnique returns the last node holding a key less than node's,
// skipping any further duplicates of node's own key.
func (t *Tree) PrevUnique(node *Node) *Node {
	return ebtree.PrevUnique[Node, *Node, Uint128](&t.root, node, keyOf)
}

// Delete removes node from the tree. It is a no-op if node is not
// currently linked into any tree.
func (t *Tree) Delete(node *Node) { ebtree.Delete[Node, *Node](&t.root, node) }

// All returns a sequence over every node in the tree in ascending key
// order.
func (t *Tree) All() iter.Seq[*Node] { return ebtree.All[Node, *Node](&t.root) }

// Package str implements an EBtree keyed by Go strings of arbitrary,
// independent lengths — for example a symbol table or a routing tree
// keyed by URL path. It compares keys with the string variants of the
// internal/bitops bit primitives, descending on the count of leading
// bits two keys have in common rather than a single bit position, the
// same way mb does for fixed-length byte strings.
//
// A Go string already carries its own pointer and length, so unlike the
// indirect-string flavor this package's ancestor supports elsewhere,
// there is no separate indirection layer here: Key is stored directly.
package str

import (
	"iter"

	"github.com/sociomantic-tsunami/ebtree"
	"github.com/sociomantic-tsunami/ebtree/internal/bitops"
)

// Node is a tree element keyed by Key. Embed it as the first field of a
// caller-defined struct to attach arbitrary payload.
type Node struct {
	ebtree.Header[Node]
	Key string
}

// Tree is an EBtree of [Node] keyed by string, most significant byte
// first, comparing by length implicitly: a key that is a strict prefix
// of another sorts before it.
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

func maxLenBits(a, b string) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	return n * 8
}

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
		c := *n.Bit()
		if c < 0 {
			old = n
			oldKind = ebtree.IsInner
			break
		}
		if bitops.EqualBitsStr(k, n.Key, 0, c) < c {
			old = n
			oldKind = ebtree.IsInner
			break
		}
		side := ebtree.Side(bitops.CmpBitStr(k, c))
		parentArr, parentSide = n.Links(), side
		cur = n.Links()[side]
	}

	limit := maxLenBits(k, old.Key)
	match := bitops.EqualBitsStr(k, old.Key, 0, limit)
	if match >= limit {
		if t.root.Unique() {
			return old
		}
		ebtree.InsertDuplicate[Node, *Node](parentArr, parentSide, old, node)
		return node
	}

	side := ebtree.Side(bitops.CmpBitStr(old.Key, match))
	ebtree.Thread[Node, *Node](parentArr, parentSide, old, oldKind, side, node, match)
	return node
}

// Lookup returns the first (in insertion order) node with exactly the
// given key, or nil.
func (t *Tree) Lookup(key string) *Node {
	cur := t.root.Arr()[ebtree.Left]

	for cur.IsInner() {
		n := cur.Node()
		c := *n.Bit()
		if c < 0 {
			if key == n.Key {
				return ebtree.WalkDown[Node, *Node](ebtree.ChildLink(n, ebtree.IsInner), ebtree.Left)
			}
			return nil
		}
		if bitops.EqualBitsStr(key, n.Key, 0, c) < c {
			return nil
		}
		cur = n.Links()[bitops.CmpBitStr(key, c)]
	}

	if cur.IsNil() {
		return nil
	}
	if leaf := cur.Node(); leaf.Key == key {
		return leaf
	}
	return nil
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

func keyOf(n *Node) string { return n.Key }

// NextUnique returns the first node holding a key greater than node's,
// skipping any further duplicates of node's own key.
func (t *Tree) NextUnique(node *Node) *Node {
	return ebtree.NextUnique[Node, *Node, string](&t.root, node, keyOf)
}

// PrevUnique returns the last node holding a key less than node's,
// skipping any further duplicates of node's own key.
func (t *Tree) PrevUnique(node *Node) *Node {
	return ebtree.PrevUnique[Node, *Node, string](&t.root, node, keyOf)
}

// Delete removes node from the tree. It is a no-op if node is not
// currently linked into any tree.
func (t *Tree) Delete(node *Node) { ebtree.Delete[Node, *Node](&t.root, node) }

// All returns a sequence over every node in the tree in ascending key
// order.
func (t *Tree) All() iter.Seq[*Node] { return ebtree.All[Node, *Node](&t.root) }

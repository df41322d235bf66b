// Package mb implements an EBtree keyed by fixed-length byte strings, such
// as hardware addresses or fixed-width binary records. Unlike the integer
// flavors, an inner node's bit field here counts leading bits the two
// subtrees below it share rather than selecting a single bit position —
// the byte-string equivalent of a PATRICIA trie's skip count — and
// descent compares bytes through [github.com/sociomantic-tsunami/ebtree/internal/bitops]
// instead of shifting a machine word.
//
// Every node also carries Pfx, the length in bits of the prefix it was
// registered under; [Tree.LookupLongest] and [Tree.LookupPrefix] use it to
// support longest-prefix-match lookups over variable-depth routing-table
// style entries stored in a fixed-length key space.
package mb

import (
	"iter"

	"github.com/sociomantic-tsunami/ebtree"
	"github.com/sociomantic-tsunami/ebtree/internal/bitops"
)

// Node is a tree element keyed by Key. Pfx is the number of leading bits
// of Key that are significant; ordinary exact-match operations treat the
// whole of Key as significant and ignore it. Embed Node as the first
// field of a caller-defined struct to attach arbitrary payload.
type Node struct {
	ebtree.Header[Node]
	Key []byte
	Pfx int
}

// Tree is an EBtree of [Node] keyed by fixed-length byte strings. All keys
// inserted into one Tree must have the same length.
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

// Insert links node into the tree by its Key field, comparing the whole
// of Key. If the tree is in unique mode and Key is already present, it
// returns the incumbent node and node stays out of the tree; otherwise it
// returns node.
func (t *Tree) Insert(node *Node) *Node {
	return t.insert(node, len(node.Key)*8)
}

// InsertPrefix sets node.Pfx to pfxBits and links it into the tree,
// comparing only the first pfxBits bits of Key — for registering a route
// or subnet shorter than the tree's full key width.
func (t *Tree) InsertPrefix(node *Node, pfxBits int) *Node {
	node.Pfx = pfxBits
	return t.insert(node, pfxBits)
}

func (t *Tree) insert(node *Node, limit int) *Node {
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
		if bitops.EqualBits(k, n.Key, 0, limit) < c {
			old = n
			oldKind = ebtree.IsInner
			break
		}
		side := ebtree.Side(bitops.CmpBit(k, c))
		parentArr, parentSide = n.Links(), side
		cur = n.Links()[side]
	}

	match := bitops.EqualBits(k, old.Key, 0, limit)
	if match >= limit {
		if t.root.Unique() {
			return old
		}
		ebtree.InsertDuplicate[Node, *Node](parentArr, parentSide, old, node)
		return node
	}

	side := ebtree.Side(bitops.CmpBit(old.Key, match))
	ebtree.Thread[Node, *Node](parentArr, parentSide, old, oldKind, side, node, match)
	return node
}

// Lookup returns the first (in insertion order) node with exactly the
// given key, or nil.
func (t *Tree) Lookup(key []byte) *Node {
	limit := len(key) * 8
	cur := t.root.Arr()[ebtree.Left]

	for cur.IsInner() {
		n := cur.Node()
		c := *n.Bit()
		if c < 0 {
			if bitops.EqualBits(key, n.Key, 0, limit) >= limit {
				return ebtree.WalkDown[Node, *Node](ebtree.ChildLink(n, ebtree.IsInner), ebtree.Left)
			}
			return nil
		}
		if bitops.EqualBits(key, n.Key, 0, limit) < c {
			return nil
		}
		cur = n.Links()[bitops.CmpBit(key, c)]
	}

	if cur.IsNil() {
		return nil
	}
	if leaf := cur.Node(); bitops.EqualBits(key, leaf.Key, 0, limit) >= limit {
		return leaf
	}
	return nil
}

// LookupLongest returns the node whose registered prefix (Pfx) is the
// longest match for key, or nil if none matches at all.
func (t *Tree) LookupLongest(key []byte) *Node {
	fullLen := len(key) * 8
	cur := t.root.Arr()[ebtree.Left]
	var best *Node

	consider := func(n *Node) {
		if n.Pfx <= fullLen && bitops.EqualBits(key, n.Key, 0, n.Pfx) >= n.Pfx {
			if best == nil || n.Pfx > best.Pfx {
				best = n
			}
		}
	}

	for cur.IsInner() {
		n := cur.Node()
		c := *n.Bit()
		if c < 0 {
			break
		}
		consider(n)
		if bitops.EqualBits(key, n.Key, 0, fullLen) < c {
			break
		}
		cur = n.Links()[bitops.CmpBit(key, c)]
	}
	if !cur.IsNil() {
		consider(cur.Node())
	}
	return best
}

// LookupPrefix returns the node registered (via [Tree.InsertPrefix]) with
// exactly the given prefix length over key, or nil if no such entry
// exists.
func (t *Tree) LookupPrefix(key []byte, pfxBits int) *Node {
	cur := t.root.Arr()[ebtree.Left]

	for cur.IsInner() {
		n := cur.Node()
		c := *n.Bit()
		if c < 0 {
			break
		}
		if c >= pfxBits {
			break
		}
		if bitops.EqualBits(key, n.Key, 0, c) < c {
			return nil
		}
		cur = n.Links()[bitops.CmpBit(key, c)]
	}

	if cur.IsNil() {
		return nil
	}
	candidate := cur.Node()
	if candidate.Pfx == pfxBits && bitops.EqualBits(key, candidate.Key, 0, pfxBits) >= pfxBits {
		return candidate
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

func keyOf(n *Node) string { return string(n.Key) }

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

// Package u64 implements an EBtree keyed by a 64-bit integer, in both
// unsigned and two's-complement signed flavors sharing the same node and
// tree types. A given [Tree] must be used consistently with either the
// plain (unsigned) methods or the Signed ones throughout its life — mixing
// them on the same tree produces a structure neither descent order agrees
// with.
package u64

import (
	"iter"

	"github.com/sociomantic-tsunami/ebtree"
	"github.com/sociomantic-tsunami/ebtree/internal/inttree"
)

// Node is a tree element keyed by Key. Embed it as the first field of a
// caller-defined struct to attach arbitrary payload; the tree never
// allocates or copies nodes.
type Node struct {
	ebtree.Header[Node]
	Key uint64
}

// Tree is an EBtree of [Node] keyed by uint64 (or, via the Signed methods,
// int64).
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

func keyOf(n *Node) uint64 { return n.Key }

const signBit64 = uint64(1) << 63

func signedKeyOf(n *Node) uint64 { return n.Key ^ signBit64 }

// Insert links node into the tree by its Key field, treated as unsigned.
// If the tree is in unique mode and Key is already present, it returns the
// incumbent node and node stays out of the tree; otherwise it returns
// node.
func (t *Tree) Insert(node *Node) *Node {
	return inttree.Insert[Node, *Node, uint64](&t.root, node, keyOf)
}

// InsertSigned is [Tree.Insert] for a Key holding a two's-complement int64
// bit pattern.
func (t *Tree) InsertSigned(node *Node) *Node {
	return inttree.Insert[Node, *Node, uint64](&t.root, node, signedKeyOf)
}

// Lookup returns the first (in insertion order) node with the given
// unsigned key, or nil.
func (t *Tree) Lookup(key uint64) *Node {
	return inttree.Lookup[Node, *Node, uint64](&t.root, key, keyOf)
}

// LookupSigned is [Tree.Lookup] for a two's-complement int64 key.
func (t *Tree) LookupSigned(key int64) *Node {
	return inttree.Lookup[Node, *Node, uint64](&t.root, uint64(key)^signBit64, signedKeyOf)
}

// LookupFloor returns the node with the greatest unsigned key <= key, or
// nil.
func (t *Tree) LookupFloor(key uint64) *Node {
	return inttree.LookupFloor[Node, *Node, uint64](&t.root, key, keyOf)
}

// LookupCeil returns the node with the smallest unsigned key >= key, or
// nil.
func (t *Tree) LookupCeil(key uint64) *Node {
	return inttree.LookupCeil[Node, *Node, uint64](&t.root, key, keyOf)
}

// LookupFloorSigned is [Tree.LookupFloor] for a signed key.
func (t *Tree) LookupFloorSigned(key int64) *Node {
	return inttree.LookupFloor[Node, *Node, uint64](&t.root, uint64(key)^signBit64, signedKeyOf)
}

// LookupCeilSigned is [Tree.LookupCeil] for a signed key.
func (t *Tree) LookupCeilSigned(key int64) *Node {
	return inttree.LookupCeil[Node, *Node, uint64](&t.root, uint64(key)^signBit64, signedKeyOf)
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

// NextUnique returns the first node holding a key greater than node's,
// skipping any further duplicates of node's own key.
func (t *Tree) NextUnique(node *Node) *Node {
	return ebtree.NextUnique[Node, *Node, uint64](&t.root, node, keyOf)
}

// PrevUnique returns the last node holding a key less than node's,
// skipping any further duplicates of node's own key.
func (t *Tree) PrevUnique(node *Node) *Node {
	return ebtree.PrevUnique[Node, *Node, uint64](&t.root, node, keyOf)
}

// Delete removes node from the tree. It is a no-op if node is not
// currently linked into any tree.
func (t *Tree) Delete(node *Node) { ebtree.Delete[Node, *Node](&t.root, node) }

// All returns a sequence over every node in the tree in ascending
// unsigned key order.
func (t *Tree) All() iter.Seq[*Node] { return ebtree.All[Node, *Node](&t.root) }

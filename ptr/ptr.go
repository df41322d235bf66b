// Package ptr implements an EBtree keyed by raw pointer identity
// (uintptr), for indexing caller objects by address — for example a
// connection table keyed by the address of a per-connection struct
// embedding [Node].
package ptr

import (
	"iter"
	"unsafe"

	"github.com/sociomantic-tsunami/ebtree"
	"github.com/sociomantic-tsunami/ebtree/internal/inttree"
)

// Node is a tree element keyed by Key, a raw address. Embed it as the
// first field of a caller-defined struct to attach arbitrary payload.
type Node struct {
	ebtree.Header[Node]
	Key uintptr
}

// Tree is an EBtree of [Node] keyed by uintptr.
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

func keyOf(n *Node) uintptr { return n.Key }

// Insert links node into the tree by its Key field. If the tree is in
// unique mode and Key is already present, it returns the incumbent node
// and node stays out of the tree; otherwise it returns node.
func (t *Tree) Insert(node *Node) *Node {
	return inttree.Insert[Node, *Node, uintptr](&t.root, node, keyOf)
}

// InsertAddr sets node.Key to the address of p and inserts it.
func (t *Tree) InsertAddr(node *Node, p unsafe.Pointer) *Node {
	node.Key = uintptr(p)
	return t.Insert(node)
}

// Lookup returns the first (in insertion order) node with the given key,
// or nil.
func (t *Tree) Lookup(key uintptr) *Node {
	return inttree.Lookup[Node, *Node, uintptr](&t.root, key, keyOf)
}

// LookupAddr is [Tree.Lookup] keyed by a pointer's address.
func (t *Tree) LookupAddr(p unsafe.Pointer) *Node { return t.Lookup(uintptr(p)) }

// LookupFloor returns the node with the greatest key <= key, or nil.
func (t *Tree) LookupFloor(key uintptr) *Node {
	return inttree.LookupFloor[Node, *Node, uintptr](&t.root, key, keyOf)
}

// LookupCeil returns the node with the smallest key >= key, or nil.
func (t *Tree) LookupCeil(key uintptr) *Node {
	return inttree.LookupCeil[Node, *Node, uintptr](&t.root, key, keyOf)
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
	return ebtree.NextUnique[Node, *Node, uintptr](&t.root, node, keyOf)
}

// PrevUnique returns the last node holding a key less than node's,
// skipping any further duplicates of node's own key.
func (t *Tree) PrevUnique(node *Node) *Node {
	return ebtree.PrevUnique[Node, *Node, uintptr](&t.root, node, keyOf)
}

// Delete removes node from the tree. It is a no-op if node is not
// currently linked into any tree.
func (t *Tree) Delete(node *Node) { ebtree.Delete[Node, *Node](&t.root, node) }

// All returns a sequence over every node in the tree in ascending address
// order.
func (t *Tree) All() iter.Seq[*Node] { return ebtree.All[Node, *Node](&t.root) }

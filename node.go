package ebtree

// Header is the shared layout every node flavor embeds as its first field.
// Embedding it first is what makes a *N and a *Header[N] (and therefore the
// address this node's branches array lives at) the same address, which is
// the equivalence [Link] relies on.
//
// Header carries the structural fields every node needs regardless of key
// type: a pair of tagged child links, a tagged link to this node's parent
// in its inner role, a tagged link to its parent in its leaf role, and the
// bit index. It does not carry a key — that belongs to the concrete node
// type in each flavor package.
type Header[N any] struct {
	branches [2]Link[N]
	nodeP    Link[N]
	leafP    Link[N]
	bit      int
}

// Links returns the pair of child links of this node.
func (h *Header[N]) Links() *[2]Link[N] { return &h.branches }

// NodeParent returns this node's parent link in its inner (branching) role.
// It is nil exactly when this node has no inner role — either because it
// has never branched, or because it is the sole leaf directly under the
// root.
func (h *Header[N]) NodeParent() *Link[N] { return &h.nodeP }

// LeafParent returns this node's parent link in its leaf (data-carrying)
// role. It is nil exactly when the node is not currently in any tree.
func (h *Header[N]) LeafParent() *Link[N] { return &h.leafP }

// Bit returns a pointer to the bit index: for an ordinary inner node, the
// key bit position selecting its child (0 = lowest bit, higher bits nearer
// the root); for a byte-string inner node, the count of identical leading
// bits shared by its subtree; negative inside a duplicate-key subtree.
func (h *Header[N]) Bit() *int { return &h.bit }

// InTree reports whether this node is currently linked into some tree.
func (h *Header[N]) InTree() bool { return !h.leafP.IsNil() }

// Branches is the constraint every node flavor's pointer type must satisfy
// by embedding [Header][N] as its first field. It gives the generic
// traversal, insertion, and deletion algorithms in this package a uniform
// way to reach a node's structural fields without knowing anything about
// its key.
type Branches[N any] interface {
	*N

	Links() *[2]Link[N]
	NodeParent() *Link[N]
	LeafParent() *Link[N]
	Bit() *int
}

// Root is the always-present, two-link header of a tree. Its layout —
// exactly one [2]Link[N] array and nothing else — mirrors a
// node's branches array on purpose: that is what lets [Delete] (through
// [parentLinks]) rewrite "the child slot of whatever a node hangs under"
// through the same code path whether that owner turns out to be a real
// node or the root itself.
//
// links[Left] is the tree body, or nil if the tree is empty. links[Right]
// is never a pointer to tree content — only its tag bit is meaningful, and
// it records whether the tree rejects duplicate keys (see [Root.Unique]).
type Root[N any] struct {
	links [2]Link[N]
}

// Empty reports whether the tree holds no nodes.
func (r *Root[N]) Empty() bool { return r.links[Left].IsNil() }

// Unique reports whether this tree rejects duplicate keys. Insert of a key
// already present returns the incumbent node instead of linking the new
// one in.
func (r *Root[N]) Unique() bool { return r.links[Right]&1 != 0 }

// SetUnique switches the tree between unique-key and duplicates-allowed
// mode. It is meant to be called once, at construction, before any insert;
// changing it on a populated tree does not retroactively deduplicate
// existing entries.
func (r *Root[N]) SetUnique(unique bool) {
	if unique {
		r.links[Right] |= 1
	} else {
		r.links[Right] &^= 1
	}
}

// root returns the node side of this tree (links[Left]).
func (r *Root[N]) root() Link[N] { return r.links[Left] }

// Arr returns the root's own link array. Key-flavor packages use it as the
// top-level parentArr argument to [Thread] and [InsertDuplicate] when
// inserting the first or second node into an empty or single-leaf tree,
// and as the address identifying "this is root" when resolving a climb
// that may have run off the top of the tree.
func (r *Root[N]) Arr() *[2]Link[N] { return &r.links }

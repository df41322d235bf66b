package ebtree

import "unsafe"

// Side identifies which child slot of a parent a link occupies, or which
// child slot of an inner node a descent should follow.
type Side uint8

const (
	// Left is child/side index 0.
	Left Side = 0
	// Right is child/side index 1.
	Right Side = 1
)

// Other returns the side opposite to s.
func (s Side) Other() Side { return s ^ 1 }

// Kind tags what a child link in a node's branches array refers to: the
// body of another inner node to keep descending into, or a leaf where
// descent must stop. Kind and Side share the same bit position in a [Link]
// — which meaning applies depends on whether the link came from a
// branches[] slot (Kind) or a node_p/leaf_p slot (Side).
type Kind uint8

const (
	// IsLeaf tags a link that refers to a terminal, data-carrying node.
	IsLeaf Kind = 0
	// IsInner tags a link that refers to a branching node descent must
	// continue through.
	IsInner Kind = 1
)

// Link is a tagged pointer: its low bit carries a one-bit [Side] or [Kind]
// tag (depending on context) and its remaining bits address the [Header]
// embedded at the front of some node of type N, or the link array of the
// [Root] that owns the tree. The low bit is available because every Go
// allocation the runtime hands out, and every struct whose first field is a
// pointer-shaped value, is aligned to at least 2 bytes.
//
// A zero Link has a zero address regardless of its tag bit, and is treated
// as "no link" throughout this package — this is what lets [Root]'s mode
// flag (see [Root.Unique]) share storage with a link field without ever
// being mistaken for a pointer to tree content.
type Link[N any] uintptr

// linkTo tags the address of n with s and returns the resulting [Link].
func linkTo[N any](n *N, s Side) Link[N] {
	return linkToAddr[N](unsafe.Pointer(n), uint8(s))
}

// ChildLink returns a [Link] addressing n, tagged with kind, suitable for
// storing in a branches[] slot ([Header.Links]). Key-flavor packages use
// this to build the links that make a node reachable for descent.
func ChildLink[N any](n *N, kind Kind) Link[N] {
	return linkToAddr[N](unsafe.Pointer(n), uint8(kind))
}

// LinkTo returns a [Link] addressing arr — typically a node's own branches
// array (from [Header.Links]) or a [Root]'s link array (from [Root.Arr]) —
// tagged with side. Key-flavor packages use this for the
// [Header.LeafParent] link of the first node placed under an empty root,
// and for the starting position of a floor/ceiling climb; [Thread] sets
// every parent link of the nodes it moves by itself.
func LinkTo[N any](arr *[2]Link[N], side Side) Link[N] {
	return linkToAddr[N](unsafe.Pointer(arr), uint8(side))
}

// linkToAddr tags addr with tag and returns the resulting [Link]. addr may
// be the address of a node's [Header] or of a [Root]'s link array — both
// are valid referents for a Link, which is why deletion (see [parentLinks])
// can rewire a grandparent's child slot without knowing which kind of
// owner it has. tag is a raw uint8 so callers can pass either a [Side] or
// a [Kind] without the two constraining each other.
func linkToAddr[N any](addr unsafe.Pointer, tag uint8) Link[N] {
	return Link[N](uintptr(addr) | uintptr(tag&1))
}

// addr returns the untagged address carried by l.
func (l Link[N]) addr() unsafe.Pointer {
	return unsafe.Pointer(uintptr(l) &^ uintptr(1))
}

// IsNil reports whether l carries no address, independent of its tag bit.
func (l Link[N]) IsNil() bool { return l.addr() == nil }

// Side returns the side tag carried by l. Only meaningful for links stored
// in a node_p or leaf_p field.
func (l Link[N]) Side() Side { return Side(l & 1) }

// Kind returns the kind tag carried by l. Only meaningful for links stored
// in a branches[] slot.
func (l Link[N]) Kind() Kind { return Kind(l & 1) }

// IsInner reports whether l is tagged [IsInner].
func (l Link[N]) IsInner() bool { return l.Kind() == IsInner }

// node returns the *N addressed by l. The caller must already know, from
// context, that l truly addresses an N and not a [Root]'s link array —
// see [Next] and [Prev] for the one place that ambiguity can arise and how
// it is resolved safely.
func (l Link[N]) node() *N {
	return (*N)(l.addr())
}

// Node returns the *N addressed by l, or nil if l is nil. Like [node] but
// exported for key-flavor packages; callers outside this package only ever
// call it on links already known to address a node (branches[] slots, or
// a parent link already checked against [Link.IsRoot]).
func (l Link[N]) Node() *N {
	if l.IsNil() {
		return nil
	}
	return l.node()
}

// IsRoot reports whether l addresses root's own link array rather than a
// node. root's link array is a perfectly valid, non-nil address, so this
// comparison — not [Link.IsNil] — is what a climb looking for a sibling
// must use to detect that it has run off the top of the tree.
func (l Link[N]) IsRoot(root *Root[N]) bool {
	return l.addr() == unsafe.Pointer(&root.links)
}

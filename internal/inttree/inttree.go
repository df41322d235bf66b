// Package inttree implements the shared descent, insertion, and range
// lookup logic for keys that fit in a native unsigned machine integer —
// the engine behind the u32, u64, and ptr packages. Each of those packages
// supplies its own node type and a function extracting the descent key
// from it; everything about walking bits, finding the join bit, and
// threading new nodes in lives here once.
package inttree

import (
	"math/bits"

	"github.com/sociomantic-tsunami/ebtree"
)

// Unsigned is the set of native integer types wide enough to serve as an
// EBtree descent key directly, without the byte-at-a-time comparison the
// mb and str packages need.
type Unsigned interface {
	~uint32 | ~uint64 | ~uintptr
}

func fls[K Unsigned](v K) int { return bits.Len64(uint64(v)) }

// Insert links node into the tree, threading it in at the bit position
// where its key first differs from whatever it collides with. If the key
// already exists and root is in unique mode, it returns the incumbent
// node and leaves node out of the tree; otherwise it returns node itself,
// whether that meant an ordinary thread or a new duplicate-chain entry.
func Insert[N any, P ebtree.Branches[N], K Unsigned](root *ebtree.Root[N], node *N, key func(*N) K) *N {
	pnode := P(node)
	k := key(node)
	arr := root.Arr()

	if root.Empty() {
		arr[ebtree.Left] = ebtree.ChildLink(node, ebtree.IsLeaf)
		*pnode.LeafParent() = ebtree.LinkTo(arr, ebtree.Left)
		return node
	}

	parentArr, parentSide := arr, ebtree.Left
	cur := arr[ebtree.Left]

	var old *N
	var oldKind ebtree.Kind

	for {
		if !cur.IsInner() {
			old = cur.Node()
			oldKind = ebtree.IsLeaf
			break
		}

		n := cur.Node()
		pn := P(n)
		b := *pn.Bit()
		if b < 0 {
			old = n
			oldKind = ebtree.IsInner
			break
		}

		nk := key(n)
		if (k^nk)>>uint(b) >= 2 {
			old = n
			oldKind = ebtree.IsInner
			break
		}

		side := ebtree.Side((k >> uint(b)) & 1)
		parentArr, parentSide = pn.Links(), side
		cur = pn.Links()[side]
	}

	ok := key(old)
	if k == ok {
		if root.Unique() {
			return old
		}
		ebtree.InsertDuplicate[N, P](parentArr, parentSide, old, node)
		return node
	}

	b := fls(k^ok) - 1
	side := ebtree.Side((ok >> uint(b)) & 1)
	ebtree.Thread[N, P](parentArr, parentSide, old, oldKind, side, node, b)
	return node
}

// Lookup returns the first (in insertion order, for a duplicated key)
// node holding key, or nil if no node does.
func Lookup[N any, P ebtree.Branches[N], K Unsigned](root *ebtree.Root[N], k K, key func(*N) K) *N {
	cur := root.Arr()[ebtree.Left]

	for cur.IsInner() {
		n := cur.Node()
		pn := P(n)
		b := *pn.Bit()
		if b < 0 {
			if key(n) == k {
				return ebtree.WalkDown[N, P](ebtree.ChildLink(n, ebtree.IsInner), ebtree.Left)
			}
			return nil
		}
		if (k^key(n))>>uint(b) >= 2 {
			return nil
		}
		cur = pn.Links()[(k>>uint(b))&1]
	}

	if cur.IsNil() {
		return nil
	}
	if leaf := cur.Node(); key(leaf) == k {
		return leaf
	}
	return nil
}

// descendToDivergence walks from root as far as the ordinary descent for
// needle goes, and returns the node at which it stopped along with the
// side of that node's parent link (parentArr/parentSide) it occupies —
// needed so the floor/ceiling ascent below can find the node's sibling.
// ok is that node's own key (for an inner node this is the key shared by
// its whole subtree, since every node in this package's duplicate chains
// carries the true duplicate key regardless of which role it plays).
func descendToDivergence[N any, P ebtree.Branches[N], K Unsigned](root *ebtree.Root[N], needle K, key func(*N) K) (stop *N, stopArr *[2]ebtree.Link[N], stopSide ebtree.Side, ok K, isInner bool) {
	arr := root.Arr()
	parentArr, parentSide := arr, ebtree.Left
	cur := arr[ebtree.Left]

	for cur.IsInner() {
		n := cur.Node()
		pn := P(n)
		b := *pn.Bit()
		if b < 0 {
			return n, parentArr, parentSide, key(n), true
		}
		nk := key(n)
		if (needle^nk)>>uint(b) >= 2 {
			return n, parentArr, parentSide, nk, true
		}
		side := ebtree.Side((needle >> uint(b)) & 1)
		parentArr, parentSide = pn.Links(), side
		cur = pn.Links()[side]
	}

	leaf := cur.Node()
	return leaf, parentArr, parentSide, key(leaf), false
}

// ascend climbs node-parent links from (arr, side) — the position of a
// node that cannot be descended into further — for as long as the current
// position is on stopSide. At the first position on the other side it
// returns the subtree in that parent's stopSide slot, walked all the way
// down via walkSide. It returns nil if the climb runs off the top of the
// tree.
func ascend[N any, P ebtree.Branches[N]](root *ebtree.Root[N], arr *[2]ebtree.Link[N], side, stopSide, walkSide ebtree.Side) *N {
	t := ebtree.LinkTo(arr, side)
	for t.Side() == stopSide {
		if t.IsRoot(root) {
			return nil
		}
		t = *P(t.Node()).NodeParent()
	}
	if t.IsRoot(root) {
		return nil
	}

	sibling := P(t.Node()).Links()[stopSide]
	return ebtree.WalkDown[N, P](sibling, walkSide)
}

// LookupFloor returns the node holding the greatest key less than or
// equal to needle, or nil if no such node exists.
func LookupFloor[N any, P ebtree.Branches[N], K Unsigned](root *ebtree.Root[N], needle K, key func(*N) K) *N {
	if root.Empty() {
		return nil
	}
	stop, stopArr, stopSide, ok, isInner := descendToDivergence[N, P, K](root, needle, key)
	if ok == needle {
		if isInner {
			// a duplicate subtree matching needle: floor is its rightmost
			// (most recently inserted) member.
			return ebtree.WalkDown[N, P](ebtree.ChildLink(stop, ebtree.IsInner), ebtree.Right)
		}
		return stop
	}
	if ok < needle {
		kind := ebtree.IsLeaf
		if isInner {
			kind = ebtree.IsInner
		}
		return ebtree.WalkDown[N, P](ebtree.ChildLink(stop, kind), ebtree.Right)
	}
	return ascend[N, P](root, stopArr, stopSide, ebtree.Left, ebtree.Right)
}

// LookupCeil returns the node holding the smallest key greater than or
// equal to needle, or nil if no such node exists.
func LookupCeil[N any, P ebtree.Branches[N], K Unsigned](root *ebtree.Root[N], needle K, key func(*N) K) *N {
	if root.Empty() {
		return nil
	}
	stop, stopArr, stopSide, ok, isInner := descendToDivergence[N, P, K](root, needle, key)
	if ok == needle {
		if isInner {
			// a duplicate subtree matching needle: ceiling is its leftmost
			// (first inserted) member.
			return ebtree.WalkDown[N, P](ebtree.ChildLink(stop, ebtree.IsInner), ebtree.Left)
		}
		return stop
	}
	if ok > needle {
		kind := ebtree.IsLeaf
		if isInner {
			kind = ebtree.IsInner
		}
		return ebtree.WalkDown[N, P](ebtree.ChildLink(stop, kind), ebtree.Left)
	}
	return ascend[N, P](root, stopArr, stopSide, ebtree.Right, ebtree.Left)
}

package guarded

import "github.com/sociomantic-tsunami/ebtree/internal/xsync"

// Pool recycles node values of type T. Every tree in this module treats
// node storage as externally owned — insert and delete only rewire link
// fields, they never allocate or free — so a caller churning through many
// short-lived nodes (a connection table keyed by [ptr.Node], a duplicate
// key flavor under high insert/delete turnover) can reuse this instead of
// letting each Delete's node become garbage.
type Pool[T any] struct {
	impl xsync.Pool[T]
}

// NewPool returns a Pool. newFn constructs a node when the pool is empty;
// if nil, a zero-valued *T is used. reset, if non-nil, is called on a node
// before it is returned to the pool by Put — typically to clear the key
// and any payload fields the caller embedded alongside the tree header.
func NewPool[T any](newFn func() *T, reset func(*T)) *Pool[T] {
	return &Pool[T]{impl: xsync.Pool[T]{New: newFn, Reset: reset}}
}

// Get returns a node ready for reuse.
func (p *Pool[T]) Get() *T { return p.impl.Get() }

// Put returns node to the pool after Delete has unlinked it. Putting a
// node still linked into a tree corrupts that tree for whoever gets it
// next.
func (p *Pool[T]) Put(node *T) { p.impl.Put(node) }

// Package ebtree implements the generic skeleton of an Elastic Binary Tree
// (EBtree): an ordered, intrusive, allocation-free associative container
// that maps keys to caller-supplied node objects.
//
// An EBtree descends from the root one key bit at a time, so a lookup,
// insert, or delete costs work proportional to the key width rather than
// the population of the tree — the property that makes the structure a
// good fit for timer wheels, connection tables, and other latency-sensitive
// schedulers where O(1) deletion and cheap ordered iteration matter more
// than rebalancing.
//
// This package holds only the parts that do not depend on the key's shape:
// the tagged [Link], the embeddable [Header], the [Branches] constraint
// every node type satisfies, the [Root] sentinel, and the traversal and
// deletion algorithms built on top of them. Concrete key flavors live in
// their own packages ([github.com/sociomantic-tsunami/ebtree/u32],
// [github.com/sociomantic-tsunami/ebtree/u64],
// [github.com/sociomantic-tsunami/ebtree/u128],
// [github.com/sociomantic-tsunami/ebtree/ptr],
// [github.com/sociomantic-tsunami/ebtree/mb], and
// [github.com/sociomantic-tsunami/ebtree/str]); each embeds [Header] in its
// own node struct and gets [First], [Last], [Next], [Prev], and [Delete] for
// free through generic instantiation.
//
// No package in this module allocates on behalf of the caller. Every node
// is storage the caller owns — typically embedded as the first field of a
// larger struct — and stays valid for as long as the caller keeps it
// reachable; the tree only rearranges links between nodes that already
// exist. Nothing here is safe for concurrent use without external
// synchronization; see the sibling package
// [github.com/sociomantic-tsunami/ebtree/guarded] for a lock-guarded
// wrapper.
package ebtree

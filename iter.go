package ebtree

import "iter"

// All returns a sequence over every node in the tree in ascending key
// order, the same order [First]/[Next] walk. It is the generic engine
// every key-flavor package's All method is a one-line wrapper around, the
// same way their First/Next methods wrap this package's First/Next.
func All[N any, P Branches[N]](root *Root[N]) iter.Seq[*N] {
	return func(yield func(*N) bool) {
		for n := First[N, P](root); n != nil; n = Next[N, P](root, n) {
			if !yield(n) {
				return
			}
		}
	}
}

package mb_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/sociomantic-tsunami/ebtree/mb"
)

func TestTreeFixedLengthKeys(t *testing.T) {
	Convey("Given a tree of 4-byte keys inserted out of lexicographic order", t, func() {
		var tr mb.Tree
		keys := [][]byte{[]byte("aaba"), []byte("aaaa"), []byte("abaa"), []byte("aaab")}
		for _, k := range keys {
			tr.Insert(&mb.Node{Key: k})
		}

		Convey("enumeration yields them lexicographically", func() {
			var got []string
			for n := tr.First(); n != nil; n = tr.Next(n) {
				got = append(got, string(n.Key))
			}
			So(got, ShouldResemble, []string{"aaaa", "aaab", "aaba", "abaa"})
		})

		Convey("Lookup finds each key exactly", func() {
			for _, k := range keys {
				n := tr.Lookup(k)
				So(n, ShouldNotBeNil)
				So(n.Key, ShouldResemble, k)
			}
			So(tr.Lookup([]byte("zzzz")), ShouldBeNil)
		})
	})
}

func TestTreeDuplicateOrder(t *testing.T) {
	Convey("Given the same key inserted twice under non-unique mode", t, func() {
		var tr mb.Tree
		first := &mb.Node{Key: []byte("aaaa")}
		second := &mb.Node{Key: []byte("aaaa")}
		tr.Insert(first)
		tr.Insert(second)

		Convey("traversal preserves FIFO insertion order", func() {
			So(tr.First(), ShouldEqual, first)
			So(tr.Next(first), ShouldEqual, second)
		})
	})
}

func TestTreeDuplicateOfLaterInsertedKey(t *testing.T) {
	Convey("Given a duplicate of a key that is not the first node ever inserted", t, func() {
		var tr mb.Tree
		first := &mb.Node{Key: []byte("aaaa")}
		second := &mb.Node{Key: []byte("aaab")}
		tr.Insert(first)
		tr.Insert(second)

		dup := &mb.Node{Key: []byte("aaab")}
		tr.Insert(dup)

		Convey("the duplicate chain links in without corrupting the split node", func() {
			So(tr.First(), ShouldEqual, first)
			So(tr.Next(first), ShouldEqual, second)
			So(tr.Next(second), ShouldEqual, dup)
			So(tr.Next(dup), ShouldBeNil)
			So(tr.Lookup([]byte("aaaa")), ShouldEqual, first)
		})
	})
}

func TestTreeUniqueMode(t *testing.T) {
	Convey("Given a unique tree", t, func() {
		var tr mb.Tree
		tr.SetUnique(true)
		a := &mb.Node{Key: []byte("abcd")}
		So(tr.Insert(a), ShouldEqual, a)

		Convey("inserting the same key again returns the incumbent", func() {
			b := &mb.Node{Key: []byte("abcd")}
			So(tr.Insert(b), ShouldEqual, a)
		})
	})
}

func TestTreePrefixLookups(t *testing.T) {
	Convey("Given a single route registered at a 4-bit prefix", t, func() {
		var tr mb.Tree
		key := func(b byte) []byte { return []byte{b, 0, 0, 0} }

		wide := &mb.Node{Key: key(0x0f)}
		tr.InsertPrefix(wide, 4)

		Convey("LookupPrefix finds it at exactly that length for any key sharing the prefix", func() {
			So(tr.LookupPrefix(key(0x0f), 4), ShouldEqual, wide)
			So(tr.LookupPrefix(key(0x00), 4), ShouldEqual, wide)
		})

		Convey("LookupPrefix at a length that was never registered finds nothing", func() {
			So(tr.LookupPrefix(key(0x0f), 8), ShouldBeNil)
		})

		Convey("LookupLongest matches the registered prefix for any key sharing it", func() {
			So(tr.LookupLongest(key(0x00)), ShouldEqual, wide)
			So(tr.LookupLongest(key(0xf0)), ShouldBeNil)
		})
	})
}

func TestTreeDeleteAndAll(t *testing.T) {
	Convey("Given several keys and one deletion", t, func() {
		var tr mb.Tree
		nodes := make([]*mb.Node, 0, 4)
		for _, k := range [][]byte{[]byte("aaaa"), []byte("aaab"), []byte("aaba"), []byte("abaa")} {
			n := &mb.Node{Key: k}
			nodes = append(nodes, n)
			tr.Insert(n)
		}
		tr.Delete(nodes[1])

		Convey("All reflects the deletion and stays sorted", func() {
			var got []string
			for n := range tr.All() {
				got = append(got, string(n.Key))
			}
			So(got, ShouldResemble, []string{"aaaa", "aaba", "abaa"})
		})
	})
}

package ptr_test

import (
	"sort"
	"testing"
	"unsafe"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/sociomantic-tsunami/ebtree/ptr"
)

func TestTreeByAddress(t *testing.T) {
	Convey("Given objects indexed by their own address", t, func() {
		var tr ptr.Tree
		tr.SetUnique(true)

		type conn struct{ id int }
		objs := make([]*conn, 8)
		nodes := make([]*ptr.Node, 8)
		for i := range objs {
			objs[i] = &conn{id: i}
			nodes[i] = &ptr.Node{}
			tr.InsertAddr(nodes[i], unsafe.Pointer(objs[i]))
		}

		Convey("LookupAddr finds the node registered for each object", func() {
			for i, o := range objs {
				So(tr.LookupAddr(unsafe.Pointer(o)), ShouldEqual, nodes[i])
			}
		})

		Convey("an address never registered is not found", func() {
			other := &conn{id: 99}
			So(tr.LookupAddr(unsafe.Pointer(other)), ShouldBeNil)
		})

		Convey("iteration is in ascending address order", func() {
			var got []uintptr
			for n := tr.First(); n != nil; n = tr.Next(n) {
				got = append(got, n.Key)
			}
			So(sort.SliceIsSorted(got, func(i, j int) bool { return got[i] < got[j] }), ShouldBeTrue)
			So(len(got), ShouldEqual, len(objs))
		})

		Convey("deleting a node drops only that entry", func() {
			tr.Delete(nodes[3])
			So(tr.LookupAddr(unsafe.Pointer(objs[3])), ShouldBeNil)
			So(tr.LookupAddr(unsafe.Pointer(objs[4])), ShouldEqual, nodes[4])
		})
	})
}

func TestTreeDuplicateOfLaterInsertedKey(t *testing.T) {
	Convey("Given a non-unique tree where a duplicated key is not the first node ever inserted", t, func() {
		var tr ptr.Tree
		first := &ptr.Node{Key: 0x1000}
		second := &ptr.Node{Key: 0x2000}
		tr.Insert(first)
		tr.Insert(second)

		dup := &ptr.Node{Key: 0x2000}
		tr.Insert(dup)

		Convey("the duplicate chain links in without corrupting the split node", func() {
			So(tr.First(), ShouldEqual, first)
			So(tr.Next(first), ShouldEqual, second)
			So(tr.Next(second), ShouldEqual, dup)
			So(tr.Next(dup), ShouldBeNil)
			So(tr.Lookup(0x1000), ShouldEqual, first)
		})
	})
}

func TestTreeFloorCeil(t *testing.T) {
	Convey("Given raw uintptr keys with gaps", t, func() {
		var tr ptr.Tree
		for _, k := range []uintptr{0x1000, 0x2000, 0x3000} {
			tr.Insert(&ptr.Node{Key: k})
		}

		Convey("LookupFloor and LookupCeil resolve into the gaps", func() {
			So(tr.LookupFloor(0x2500).Key, ShouldEqual, uintptr(0x2000))
			So(tr.LookupCeil(0x2500).Key, ShouldEqual, uintptr(0x3000))
			So(tr.LookupFloor(0x500), ShouldBeNil)
			So(tr.LookupCeil(0x4000), ShouldBeNil)
		})
	})
}

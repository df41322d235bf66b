package u32_test

import (
	"sort"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/sociomantic-tsunami/ebtree/internal/fixture"
	"github.com/sociomantic-tsunami/ebtree/u32"
)

func collect(tr *u32.Tree) []uint32 {
	var out []uint32
	for n := tr.First(); n != nil; n = tr.Next(n) {
		out = append(out, n.Key)
	}
	return out
}

func TestTreeBasics(t *testing.T) {
	Convey("Given an empty unique tree", t, func() {
		var tr u32.Tree
		tr.SetUnique(true)

		Convey("it reports Empty", func() {
			So(tr.Empty(), ShouldBeTrue)
			So(tr.First(), ShouldBeNil)
			So(tr.Last(), ShouldBeNil)
			So(tr.Lookup(1), ShouldBeNil)
		})

		Convey("When inserting distinct keys out of order", func() {
			keys := []uint32{50, 10, 40, 20, 30}
			nodes := make(map[uint32]*u32.Node, len(keys))
			for _, k := range keys {
				n := &u32.Node{Key: k}
				So(tr.Insert(n), ShouldEqual, n)
				nodes[k] = n
			}

			Convey("iteration visits them in ascending order", func() {
				want := append([]uint32(nil), keys...)
				sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
				So(collect(&tr), ShouldResemble, want)
			})

			Convey("Lookup finds each key", func() {
				for _, k := range keys {
					So(tr.Lookup(k), ShouldEqual, nodes[k])
				}
				So(tr.Lookup(999), ShouldBeNil)
			})

			Convey("Insert of an existing key in unique mode returns the incumbent", func() {
				dup := &u32.Node{Key: 30}
				So(tr.Insert(dup), ShouldEqual, nodes[30])
				So(tr.Empty(), ShouldBeFalse)
			})

			Convey("First and Last bound the key range", func() {
				So(tr.First().Key, ShouldEqual, uint32(10))
				So(tr.Last().Key, ShouldEqual, uint32(50))
			})

			Convey("LookupFloor and LookupCeil resolve between keys", func() {
				So(tr.LookupFloor(25).Key, ShouldEqual, uint32(20))
				So(tr.LookupCeil(25).Key, ShouldEqual, uint32(30))
				So(tr.LookupFloor(30).Key, ShouldEqual, uint32(30))
				So(tr.LookupCeil(30).Key, ShouldEqual, uint32(30))
				So(tr.LookupFloor(5), ShouldBeNil)
				So(tr.LookupCeil(55), ShouldBeNil)
			})

			Convey("Deleting a node removes exactly it", func() {
				tr.Delete(nodes[20])
				So(collect(&tr), ShouldResemble, []uint32{10, 30, 40, 50})
				So(tr.Lookup(20), ShouldBeNil)

				Convey("and deleting the rest empties the tree", func() {
					for _, k := range keys {
						if k != 20 {
							tr.Delete(nodes[k])
						}
					}
					So(tr.Empty(), ShouldBeTrue)
				})
			})
		})
	})
}

func TestTreeDuplicates(t *testing.T) {
	Convey("Given a non-unique tree with repeated keys inserted in order", t, func() {
		var tr u32.Tree

		a := &u32.Node{Key: 7}
		b := &u32.Node{Key: 7}
		c := &u32.Node{Key: 7}
		tr.Insert(a)
		tr.Insert(b)
		tr.Insert(c)

		Convey("in-order traversal preserves FIFO insertion order", func() {
			So(tr.First(), ShouldEqual, a)
			So(tr.Next(a), ShouldEqual, b)
			So(tr.Next(b), ShouldEqual, c)
			So(tr.Next(c), ShouldBeNil)
		})

		Convey("NextUnique skips the whole run", func() {
			other := &u32.Node{Key: 9}
			tr.Insert(other)
			So(tr.NextUnique(a), ShouldEqual, other)
			So(tr.PrevUnique(other), ShouldEqual, c)
		})

		Convey("LookupFloor on the exact key returns the most recently inserted", func() {
			So(tr.LookupFloor(7), ShouldEqual, c)
		})

		Convey("LookupCeil on the exact key returns the first inserted", func() {
			So(tr.LookupCeil(7), ShouldEqual, a)
		})

		Convey("deleting the middle duplicate leaves the others linked", func() {
			tr.Delete(b)
			So(tr.First(), ShouldEqual, a)
			So(tr.Next(a), ShouldEqual, c)
		})
	})
}

func TestTreeDuplicateOfLaterInsertedKey(t *testing.T) {
	Convey("Given a non-unique tree where the duplicated key is not the first node ever inserted", t, func() {
		var tr u32.Tree
		first := &u32.Node{Key: 1}
		second := &u32.Node{Key: 2}
		tr.Insert(first)
		tr.Insert(second)

		dup := &u32.Node{Key: 2}
		tr.Insert(dup)

		Convey("the duplicate chain is reachable and the split node is not corrupted", func() {
			So(collect(&tr), ShouldResemble, []uint32{1, 2, 2})
		})

		Convey("FIFO order holds across the duplicate run", func() {
			So(tr.First(), ShouldEqual, first)
			So(tr.Next(first), ShouldEqual, second)
			So(tr.Next(second), ShouldEqual, dup)
			So(tr.Next(dup), ShouldBeNil)
		})

		Convey("Lookup still finds the split node's own key", func() {
			So(tr.Lookup(1), ShouldEqual, first)
		})
	})
}

func TestTreeSigned(t *testing.T) {
	Convey("Given a tree used only through the Signed methods", t, func() {
		var tr u32.Tree
		values := []int32{-100, -1, 0, 1, 100, -50}
		for _, v := range values {
			tr.InsertSigned(&u32.Node{Key: uint32(v)})
		}

		Convey("ascending order follows signed comparison, not raw bit pattern", func() {
			var got []int32
			for n := tr.First(); n != nil; n = tr.Next(n) {
				got = append(got, int32(n.Key))
			}
			So(got, ShouldResemble, []int32{-100, -50, -1, 0, 1, 100})
		})

		Convey("LookupSigned finds negative and positive keys", func() {
			So(tr.LookupSigned(-100), ShouldNotBeNil)
			So(tr.LookupSigned(100), ShouldNotBeNil)
			So(tr.LookupSigned(42), ShouldBeNil)
		})

		Convey("LookupFloorSigned and LookupCeilSigned cross zero correctly", func() {
			So(int32(tr.LookupFloorSigned(-10).Key), ShouldEqual, int32(-50))
			So(int32(tr.LookupCeilSigned(-10).Key), ShouldEqual, int32(-1))
		})
	})
}

func TestTreeRandomProperty(t *testing.T) {
	Convey("Given many distinct random keys inserted into a unique tree", t, func() {
		var tr u32.Tree
		tr.SetUnique(true)

		keys := fixture.DistinctUint32s(500)
		nodes := make([]*u32.Node, len(keys))
		for i, k := range keys {
			nodes[i] = &u32.Node{Key: k}
			tr.Insert(nodes[i])
		}

		Convey("every inserted key is found by Lookup", func() {
			for _, n := range nodes {
				So(tr.Lookup(n.Key), ShouldEqual, n)
			}
		})

		Convey("iteration is sorted ascending", func() {
			got := collect(&tr)
			So(sort.SliceIsSorted(got, func(i, j int) bool { return got[i] < got[j] }), ShouldBeTrue)
			So(len(got), ShouldEqual, len(keys))
		})

		Convey("deleting half the nodes leaves the rest intact and sorted", func() {
			for i := 0; i < len(nodes); i += 2 {
				tr.Delete(nodes[i])
			}
			got := collect(&tr)
			So(len(got), ShouldEqual, len(nodes)/2)
			So(sort.SliceIsSorted(got, func(i, j int) bool { return got[i] < got[j] }), ShouldBeTrue)
		})

		Convey("All yields the same sequence as manual First/Next traversal", func() {
			var viaAll []uint32
			for n := range tr.All() {
				viaAll = append(viaAll, n.Key)
			}
			So(viaAll, ShouldResemble, collect(&tr))
		})
	})
}

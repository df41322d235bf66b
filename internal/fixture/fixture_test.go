package fixture_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/sociomantic-tsunami/ebtree/internal/fixture"
)

func TestDistinctGenerators(t *testing.T) {
	Convey("DistinctUint32s returns the requested count with no repeats", t, func() {
		vs := fixture.DistinctUint32s(200)
		So(len(vs), ShouldEqual, 200)
		seen := make(map[uint32]struct{}, len(vs))
		for _, v := range vs {
			seen[v] = struct{}{}
		}
		So(len(seen), ShouldEqual, len(vs))
	})

	Convey("DistinctUint64s returns the requested count with no repeats", t, func() {
		vs := fixture.DistinctUint64s(200)
		So(len(vs), ShouldEqual, 200)
		seen := make(map[uint64]struct{}, len(vs))
		for _, v := range vs {
			seen[v] = struct{}{}
		}
		So(len(seen), ShouldEqual, len(vs))
	})

	Convey("DistinctStrings returns the requested count, length, and no repeats", t, func() {
		vs := fixture.DistinctStrings(50, 6)
		So(len(vs), ShouldEqual, 50)
		seen := make(map[string]struct{}, len(vs))
		for _, v := range vs {
			So(len(v), ShouldEqual, 6)
			seen[v] = struct{}{}
		}
		So(len(seen), ShouldEqual, len(vs))
	})
}

func TestShuffle(t *testing.T) {
	Convey("Shuffle permutes a slice in place without dropping elements", t, func() {
		s := []int{1, 2, 3, 4, 5, 6, 7, 8}
		want := map[int]struct{}{1: {}, 2: {}, 3: {}, 4: {}, 5: {}, 6: {}, 7: {}, 8: {}}
		fixture.Shuffle(s)
		So(len(s), ShouldEqual, 8)
		for _, v := range s {
			_, ok := want[v]
			So(ok, ShouldBeTrue)
		}
	})
}

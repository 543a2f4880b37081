package flavor_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/syntree/errs"
	. "github.com/flier/syntree/flavor"
)

func TestPointer(t *testing.T) {
	Convey("Pointer", t, func() {
		Convey("Should round-trip a valid index", func() {
			p, err := NewPointer[uint32](0)
			So(err, ShouldBeNil)
			So(p.Index(), ShouldEqual, uint64(0))
			So(p.IsValid(), ShouldBeTrue)

			q, err := NewPointer[uint32](41)
			So(err, ShouldBeNil)
			So(q.Index(), ShouldEqual, uint64(41))
		})

		Convey("Should reject the reserved all-ones value", func() {
			_, err := NewPointer[uint16](uint64(^uint16(0)))
			So(err, ShouldNotBeNil)

			kind, ok := errs.AsKind(err)
			So(ok, ShouldBeTrue)
			So(kind, ShouldEqual, errs.KindOverflow)
		})

		Convey("Should reject a value too large for the width", func() {
			_, err := NewPointer[uint16](uint64(1) << 20)
			So(err, ShouldNotBeNil)
		})

		Convey("Should have a zero value that is not a valid pointer", func() {
			var zero Pointer[uint32]
			So(zero.IsValid(), ShouldBeFalse)
		})
	})
}

func TestOption(t *testing.T) {
	Convey("Option", t, func() {
		Convey("Should be none by default", func() {
			var o Option[uint32]
			So(o.IsNone(), ShouldBeTrue)
			So(o.IsSome(), ShouldBeFalse)

			_, ok := o.Get()
			So(ok, ShouldBeFalse)
		})

		Convey("Should carry a pointer wrapping index zero", func() {
			p, err := NewPointer[uint32](0)
			So(err, ShouldBeNil)

			o := SomePointer(p)
			So(o.IsSome(), ShouldBeTrue)

			got, ok := o.Get()
			So(ok, ShouldBeTrue)
			So(got.Index(), ShouldEqual, uint64(0))
		})

		Convey("Should distinguish none from a pointer at index zero", func() {
			none := NonePointer[uint32]()

			p, err := NewPointer[uint32](0)
			So(err, ShouldBeNil)

			some := SomePointer(p)

			So(none.IsSome(), ShouldBeFalse)
			So(some.IsSome(), ShouldBeTrue)
		})
	})
}

package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Normalize", t, func() {
		Convey("Should strip pre-release suffixes", func() {
			So(Normalize("1.2.3-beta"), ShouldEqual, "1.2.3")
		})

		Convey("Should strip prefixes", func() {
			So(Normalize("v1.2.3"), ShouldEqual, "1.2.3")
			So(Normalize("Version 10.20.30 (build 7)"), ShouldEqual, "10.20.30")
		})

		Convey("Should pass canonical versions through", func() {
			So(Normalize("1.0.0"), ShouldEqual, "1.0.0")
		})

		Convey("Should take the first match when several exist", func() {
			So(Normalize("2.0.0 supersedes 1.9.9"), ShouldEqual, "2.0.0")
		})

		Convey("Should degrade to 0.0.0 when nothing matches", func() {
			So(Normalize("nightly"), ShouldEqual, Zero)
			So(Normalize(""), ShouldEqual, Zero)
			So(Normalize("1.2"), ShouldEqual, Zero)
		})
	})
}

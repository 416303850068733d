package version

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCanUpdate(t *testing.T) {
	Convey("CanUpdate without the tie-break policy", t, func() {
		So(CanUpdate("1.0.0", "1.0.1", false), ShouldBeTrue)
		So(CanUpdate("1.0.1", "1.0.0", false), ShouldBeFalse)
		So(CanUpdate("1.0.0", "1.0.0", false), ShouldBeFalse)
		So(CanUpdate("1.9.9", "2.0.0", false), ShouldBeTrue)
		So(CanUpdate("2.0.0", "1.9.9", false), ShouldBeFalse)
	})

	Convey("CanUpdate with the tie-break policy", t, func() {
		Convey("Equal versions still report an update", func() {
			So(CanUpdate("1.0.0", "1.0.0", true), ShouldBeTrue)
		})

		Convey("A newer local version still reports an update", func() {
			So(CanUpdate("2.0.0", "1.0.0", true), ShouldBeTrue)
		})

		Convey("A strictly newer store version reports an update regardless", func() {
			So(CanUpdate("1.0.0", "1.1.0", true), ShouldBeTrue)
		})
	})

	Convey("Missing trailing fields count as zero", t, func() {
		So(CanUpdate("1.0", "1.0.1", false), ShouldBeTrue)
		So(CanUpdate("1.0.0", "1.0", false), ShouldBeFalse)
		So(CanUpdate("1", "1.0.0", true), ShouldBeTrue)
	})

	Convey("The most significant field decides on its own", t, func() {
		// Whenever the store major is strictly greater, the remaining
		// fields must not influence the outcome.
		for _, localRest := range []string{"0.0", "9.9", "3.1"} {
			for _, storeRest := range []string{"0.0", "9.9", "3.1"} {
				local := fmt.Sprintf("1.%s", localRest)
				store := fmt.Sprintf("2.%s", storeRest)
				So(CanUpdate(local, store, false), ShouldBeTrue)
			}
		}
	})
}

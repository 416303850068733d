package util

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("apple"), ShouldEqual, "Apple")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestIgnore(t *testing.T) {
	Convey("Ignore", t, func() {
		Convey("Should swallow errors without panicking", func() {
			So(func() { Ignore(func() error { return errors.New("boom") }) }, ShouldNotPanic)
		})
	})
}

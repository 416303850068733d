package where

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/storecheck-cli/storecheck/constant"
	"github.com/storecheck-cli/storecheck/filesystem"
)

func TestWhere(t *testing.T) {
	filesystem.SetMemMapFs()
	defer filesystem.SetOsFs()

	Convey("Path resolution", t, func() {
		Convey("Config honors the environment override", func() {
			t.Setenv(EnvConfigPath, "/custom/config")
			So(Config(), ShouldEqual, "/custom/config")
		})

		Convey("Logs nests under the config directory", func() {
			t.Setenv(EnvConfigPath, "/custom/config")
			So(Logs(), ShouldEqual, "/custom/config/logs")
		})

		Convey("Temp is namespaced by the application identifier", func() {
			So(strings.Contains(Temp(), constant.Storecheck), ShouldBeTrue)
		})
	})
}

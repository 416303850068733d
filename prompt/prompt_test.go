package prompt

import (
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/storecheck-cli/storecheck/checker"
	"github.com/storecheck-cli/storecheck/open"
)

func stubChoice(choice string) func(survey.Prompt, interface{}, ...survey.AskOpt) error {
	return func(_ survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
		*(response.(*string)) = choice
		return nil
	}
}

func TestRenderBody(t *testing.T) {
	Convey("renderBody", t, func() {
		status := checker.NewStatus("1.0.0", "1.2.0", "https://apps.apple.com/x", mo.Some("Bug fixes"), false)

		Convey("Substitutes the status fields", func() {
			body, err := renderBody(status, "{{ .StoreVersion }} over {{ .LocalVersion }}: {{ .Notes }}")
			So(err, ShouldBeNil)
			So(body, ShouldEqual, "1.2.0 over 1.0.0: Bug fixes")
		})

		Convey("Rejects malformed templates", func() {
			_, err := renderBody(status, "{{ .Broken")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestShow(t *testing.T) {
	status := checker.NewStatus("1.0.0", "1.2.0", "https://apps.apple.com/x", mo.None[string](), false)

	opts := Options{
		Title:        "Update available",
		Body:         "{{ .StoreVersion }}",
		UpdateLabel:  "Update",
		DismissLabel: "Later",
		AllowDismiss: true,
	}

	restore := func() {
		askOne = survey.AskOne
		launch = open.StartWith
	}

	Convey("Show", t, func() {
		Convey("The update action launches the store link", func() {
			defer restore()
			var launched string
			askOne = stubChoice("Update")
			launch = func(input, app string) error {
				launched = input
				return nil
			}

			So(Show(status, opts), ShouldBeNil)
			So(launched, ShouldEqual, "https://apps.apple.com/x")
		})

		Convey("A launch failure surfaces as an error", func() {
			defer restore()
			askOne = stubChoice("Update")
			launch = func(string, string) error { return errors.New("no handler") }

			So(Show(status, opts), ShouldNotBeNil)
		})

		Convey("Dismissal runs the callback and launches nothing", func() {
			defer restore()
			var launched, dismissed bool
			askOne = stubChoice("Later")
			launch = func(string, string) error {
				launched = true
				return nil
			}

			dismissable := opts
			dismissable.OnDismiss = func() { dismissed = true }

			So(Show(status, dismissable), ShouldBeNil)
			So(dismissed, ShouldBeTrue)
			So(launched, ShouldBeFalse)
		})
	})
}

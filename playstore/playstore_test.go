package playstore

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

const markupPage = `<html><body>
<div class="hAyfc">
  <div class="BgcNfc">Updated</div>
  <span class="htlgb">May 1, 2024</span>
</div>
<div class="hAyfc">
  <div class="BgcNfc">Current Version</div>
  <span class="htlgb">2.3.4</span>
</div>
<div class="W4P4ne">
  <div class="wSaTQd">What's New</div>
  <div class="PHBdkd"><div class="DWPxHb">Fixed crashes</div></div>
</div>
</body></html>`

// embeddedPage fabricates a details page whose data lives only in the ds:5
// script payload, the way current page revisions ship it.
func embeddedPage(version, notes string) string {
	leaf := make([]any, 145)
	leaf[140] = []any{[]any{[]any{version}}}
	if notes != "" {
		leaf[144] = []any{nil, []any{nil, notes}}
	}
	data := []any{nil, []any{nil, nil, leaf}}

	script := "AF_initDataCallback({key: 'ds:5', hash: '7', data:" +
		string(lo.Must(json.Marshal(data))) +
		", sideChannel: {}});"

	return "<html><head><script>" + script + "</script></head><body></body></html>"
}

func TestPageURL(t *testing.T) {
	Convey("PageURL", t, func() {
		So(
			PageURL("com.example.app", "en"),
			ShouldEqual,
			"https://play.google.com/store/apps/details?hl=en&id=com.example.app",
		)
	})
}

func TestParseMarkup(t *testing.T) {
	Convey("Structured markup strategy", t, func() {
		Convey("Should read the labeled version and the What's New section", func() {
			app, ok := Parse(markupPage).Get()
			So(ok, ShouldBeTrue)
			So(app.Version, ShouldEqual, "2.3.4")
			So(app.ReleaseNotes.OrEmpty(), ShouldEqual, "Fixed crashes")
		})

		Convey("Should fail without a Current Version block", func() {
			page := `<html><body><div class="hAyfc"><div class="BgcNfc">Updated</div></div></body></html>`
			So(Parse(page).IsAbsent(), ShouldBeTrue)
		})

		Convey("Release notes are optional", func() {
			page := `<html><body><div class="hAyfc"><div class="BgcNfc">Current Version</div><span class="htlgb">9.9.9</span></div></body></html>`
			app, ok := Parse(page).Get()
			So(ok, ShouldBeTrue)
			So(app.Version, ShouldEqual, "9.9.9")
			So(app.ReleaseNotes.IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestParseEmbedded(t *testing.T) {
	Convey("Embedded-data strategy", t, func() {
		Convey("Should kick in when the structured markup is absent", func() {
			app, ok := Parse(embeddedPage("5.6.7", "Bug fixes<br>Performance &amp; stability")).Get()
			So(ok, ShouldBeTrue)
			So(app.Version, ShouldEqual, "5.6.7")
			So(app.ReleaseNotes.OrEmpty(), ShouldEqual, "Bug fixes\nPerformance & stability")
		})

		Convey("Should tolerate a payload without release notes", func() {
			app, ok := Parse(embeddedPage("5.6.7", "")).Get()
			So(ok, ShouldBeTrue)
			So(app.Version, ShouldEqual, "5.6.7")
			So(app.ReleaseNotes.IsAbsent(), ShouldBeTrue)
		})

		Convey("Should yield no data without the marker script", func() {
			page := `<html><head><script>AF_initDataCallback({key: 'ds:4', data:[]});</script></head></html>`
			So(Parse(page).IsAbsent(), ShouldBeTrue)
		})

		Convey("Should yield no data when the index path misses", func() {
			page := `<html><head><script>AF_initDataCallback({key: 'ds:5', hash: '7', data:[], sideChannel: {}});</script></head></html>`
			So(Parse(page).IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Strategy precedence", t, func() {
		Convey("Structured markup wins when both are present", func() {
			page := markupPage + embeddedPage("5.6.7", "")
			app, ok := Parse(page).Get()
			So(ok, ShouldBeTrue)
			So(app.Version, ShouldEqual, "2.3.4")
		})
	})

	Convey("Garbage input", t, func() {
		So(Parse("").IsAbsent(), ShouldBeTrue)
		So(Parse("not html at all").IsAbsent(), ShouldBeTrue)
	})
}

package appstore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

// rewriteTransport redirects every request to a test server, regardless of
// the URL the client was asked to fetch.
type rewriteTransport struct {
	target string
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	redirected := req.Clone(req.Context())
	u := *req.URL
	u.Scheme = "http"
	u.Host = t.target
	redirected.URL = &u
	return http.DefaultTransport.RoundTrip(redirected)
}

func TestLookupURL(t *testing.T) {
	Convey("LookupURL", t, func() {
		Convey("Should carry the bundle identifier", func() {
			So(
				LookupURL("com.example.app", mo.None[string]()),
				ShouldEqual,
				"https://itunes.apple.com/lookup?bundleId=com.example.app",
			)
		})

		Convey("Should append the storefront country when present", func() {
			So(
				LookupURL("com.example.app", mo.Some("nl")),
				ShouldEqual,
				"https://itunes.apple.com/lookup?bundleId=com.example.app&country=nl",
			)
		})
	})
}

func TestFetch(t *testing.T) {
	Convey("Fetch", t, func() {
		Convey("Should return the body on 200", func(c C) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				c.So(r.URL.Query().Get("bundleId"), ShouldEqual, "com.example.app")
				_, _ = w.Write([]byte(`{"resultCount":0,"results":[]}`))
			}))
			defer server.Close()

			client := &http.Client{Transport: rewriteTransport{target: server.Listener.Addr().String()}}
			body, err := Fetch(context.Background(), client, "com.example.app", mo.None[string]())
			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, `{"resultCount":0,"results":[]}`)
		})

		Convey("Should fail on non-200 without retrying", func() {
			var calls int
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(http.StatusNotFound)
			}))
			defer server.Close()

			client := &http.Client{Transport: rewriteTransport{target: server.Listener.Addr().String()}}
			_, err := Fetch(context.Background(), client, "com.example.app", mo.None[string]())
			So(err, ShouldNotBeNil)
			So(calls, ShouldEqual, 1)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Should extract version, link and notes from the first result", func() {
			body := []byte(`{
				"resultCount": 1,
				"results": [{
					"version": "1.2.0",
					"trackViewUrl": "https://apps.apple.com/x",
					"releaseNotes": "Bug fixes"
				}]
			}`)

			app, ok := Parse(body).Get()
			So(ok, ShouldBeTrue)
			So(app.Version, ShouldEqual, "1.2.0")
			So(app.TrackViewURL, ShouldEqual, "https://apps.apple.com/x")
			So(app.ReleaseNotes.OrEmpty(), ShouldEqual, "Bug fixes")
		})

		Convey("Absent release notes stay absent", func() {
			body := []byte(`{"resultCount":1,"results":[{"version":"1.0.0","trackViewUrl":"https://apps.apple.com/x"}]}`)

			app, ok := Parse(body).Get()
			So(ok, ShouldBeTrue)
			So(app.ReleaseNotes.IsAbsent(), ShouldBeTrue)
		})

		Convey("Empty results mean app not found, not an error", func() {
			So(Parse([]byte(`{"resultCount":0,"results":[]}`)).IsAbsent(), ShouldBeTrue)
		})

		Convey("Malformed bodies degrade to no data", func() {
			So(Parse([]byte(`<html>`)).IsAbsent(), ShouldBeTrue)
		})
	})
}

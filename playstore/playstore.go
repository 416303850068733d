// Package playstore scrapes a Play Store details page to read the published
// version of a listing.
//
// The page exposes no stable API, so two extraction strategies are layered:
// structured markup first, then the embedded script payload the current page
// revisions ship their data in. Either one producing a result wins; both
// failing is a recoverable "no data" outcome, never an error.
package playstore

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/mo"
	"github.com/storecheck-cli/storecheck/network"
)

const pageBaseURL = "https://play.google.com/store/apps/details"

// App is the slice of a store listing this application cares about.
// The details page carries no canonical per-app link field, so the request
// URL itself doubles as the store link.
type App struct {
	Version      string
	ReleaseNotes mo.Option[string]
}

// PageURL builds the details page URL for a package identifier and locale.
func PageURL(packageID, locale string) string {
	query := url.Values{}
	query.Set("id", packageID)
	query.Set("hl", locale)
	return pageBaseURL + "?" + query.Encode()
}

// Fetch performs the single bounded page request and returns the raw HTML.
// A nil client falls back to the browser-fingerprinted scrape client, since
// Play rejects vanilla Go TLS handshakes.
func Fetch(ctx context.Context, client *http.Client, packageID, locale string) (string, error) {
	if client == nil {
		client = network.Browser
	}
	body, err := network.Fetch(ctx, client, PageURL(packageID, locale))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Parse extracts the listing data from a details page document, trying the
// structured markup first and falling back to the embedded script payload.
func Parse(html string) mo.Option[App] {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return mo.None[App]()
	}

	if app := parseMarkup(doc); app.IsPresent() {
		return app
	}
	return parseEmbedded(doc)
}

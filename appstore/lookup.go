// Package appstore provides a client for the iTunes lookup API, used to read
// the published version of an App Store listing.
package appstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/samber/mo"
	"github.com/storecheck-cli/storecheck/network"
)

const lookupBaseURL = "https://itunes.apple.com/lookup"

// App is the slice of a store listing this application cares about.
type App struct {
	Version      string
	TrackViewURL string
	ReleaseNotes mo.Option[string]
}

// lookupResponse defines the internal structural mapping for iTunes lookup responses.
type lookupResponse struct {
	ResultCount int `json:"resultCount"`
	Results     []struct {
		Version      string  `json:"version"`
		TrackViewURL string  `json:"trackViewUrl"`
		ReleaseNotes *string `json:"releaseNotes"`
	} `json:"results"`
}

// LookupURL builds the lookup endpoint for a bundle identifier. A present
// country narrows the query to that storefront; absent means the store's
// default region.
func LookupURL(bundleID string, country mo.Option[string]) string {
	query := url.Values{}
	query.Set("bundleId", bundleID)
	if cc, ok := country.Get(); ok {
		query.Set("country", cc)
	}
	return lookupBaseURL + "?" + query.Encode()
}

// Fetch performs the single bounded lookup request and returns the raw JSON body.
func Fetch(ctx context.Context, client *http.Client, bundleID string, country mo.Option[string]) ([]byte, error) {
	if client == nil {
		client = network.Client
	}
	return network.Fetch(ctx, client, LookupURL(bundleID, country))
}

// Parse decodes a lookup response body. An empty results array is a valid
// "app not found" outcome and yields None, as does a malformed body.
func Parse(body []byte) mo.Option[App] {
	var decoded lookupResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return mo.None[App]()
	}

	if len(decoded.Results) == 0 {
		return mo.None[App]()
	}

	first := decoded.Results[0]
	app := App{
		Version:      first.Version,
		TrackViewURL: first.TrackViewURL,
	}
	if first.ReleaseNotes != nil {
		app.ReleaseNotes = mo.Some(*first.ReleaseNotes)
	}
	return mo.Some(app)
}

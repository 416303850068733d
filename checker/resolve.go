package checker

import (
	"context"
	"net/http"
	"runtime"

	"github.com/samber/mo"
	"github.com/storecheck-cli/storecheck/appstore"
	"github.com/storecheck-cli/storecheck/log"
	"github.com/storecheck-cli/storecheck/network"
	"github.com/storecheck-cli/storecheck/playstore"
)

// Identity carries the checked application's own metadata: its raw version
// string (normalized later, treated as opaque here) and its per-store
// identifiers.
type Identity struct {
	Version       string
	AppleBundleID string
	PlayPackageID string
}

// Config parameterizes one checker instance. It is treated as immutable.
type Config struct {
	// Platform selects the store explicitly; absent means the host platform.
	Platform mo.Option[Platform]

	Identity Identity

	// Per-store identifier overrides; absent falls back to the Identity.
	AppleID mo.Option[string]
	PlayID  mo.Option[string]

	// Country narrows the App Store lookup to a storefront.
	Country mo.Option[string]

	// Locale of the Play details page; empty means "en".
	Locale string

	// ForceVersion bypasses the fetched version field only. The listing must
	// still fetch and parse; only its version is substituted.
	ForceVersion mo.Option[string]

	// PreferNewerLocal is the mandatory tie-break policy, see version.CanUpdate.
	PreferNewerLocal bool

	// Injected transports. Nil selects the package defaults: the plain API
	// client for lookups, the browser-fingerprinted client for page scrapes.
	LookupClient *http.Client
	PageClient   *http.Client
}

// Resolve performs one bounded check and returns the resulting Status.
//
// Every failure mode (transport, parse, shape drift, unsupported platform)
// is absorbed here and reduced to None: absence means "cannot determine
// update status, do not prompt". Sub-causes are distinguished in the logs
// only, never through the return value, and nothing ever panics through.
func Resolve(ctx context.Context, cfg Config) mo.Option[Status] {
	platform := cfg.Platform.OrElse(DetectPlatform())

	ctx, cancel := context.WithTimeout(ctx, network.Timeout)
	defer cancel()

	switch platform {
	case Apple:
		return resolveApple(ctx, cfg)
	case Play:
		return resolvePlay(ctx, cfg)
	default:
		log.Debugf("check skipped: no store for platform %q", runtime.GOOS)
		return mo.None[Status]()
	}
}

func resolveApple(ctx context.Context, cfg Config) mo.Option[Status] {
	id := cfg.AppleID.OrElse(cfg.Identity.AppleBundleID)
	if id == "" {
		log.Warn("check skipped: no bundle identifier configured")
		return mo.None[Status]()
	}

	fetched := cachedListing(Apple, id, cfg.Country.OrElse("default"), func() mo.Option[listing] {
		body, err := appstore.Fetch(ctx, cfg.LookupClient, id, cfg.Country)
		if err != nil {
			log.Warnf("app store lookup: %v", err)
			return mo.None[listing]()
		}

		app, ok := appstore.Parse(body).Get()
		if !ok {
			log.Infof("app store lookup: no listing for %q", id)
			return mo.None[listing]()
		}

		return mo.Some(listing{
			Version: app.Version,
			Link:    app.TrackViewURL,
			Notes:   app.ReleaseNotes,
		})
	})

	return assemble(cfg, fetched)
}

func resolvePlay(ctx context.Context, cfg Config) mo.Option[Status] {
	id := cfg.PlayID.OrElse(cfg.Identity.PlayPackageID)
	if id == "" {
		log.Warn("check skipped: no package identifier configured")
		return mo.None[Status]()
	}

	locale := cfg.Locale
	if locale == "" {
		locale = "en"
	}

	fetched := cachedListing(Play, id, locale, func() mo.Option[listing] {
		page, err := playstore.Fetch(ctx, cfg.PageClient, id, locale)
		if err != nil {
			log.Warnf("play store page: %v", err)
			return mo.None[listing]()
		}

		app, ok := playstore.Parse(page).Get()
		if !ok {
			log.Infof("play store page: no extractable listing for %q", id)
			return mo.None[listing]()
		}

		return mo.Some(listing{
			Version: app.Version,
			// The details page has no canonical link field; the query URL is the listing.
			Link:  playstore.PageURL(id, locale),
			Notes: app.ReleaseNotes,
		})
	})

	return assemble(cfg, fetched)
}

// assemble builds the final Status from a fetched listing, applying the
// forced-version override. The Status is constructed exactly once per check.
func assemble(cfg Config, fetched mo.Option[listing]) mo.Option[Status] {
	l, ok := fetched.Get()
	if !ok {
		return mo.None[Status]()
	}

	return mo.Some(NewStatus(
		cfg.Identity.Version,
		cfg.ForceVersion.OrElse(l.Version),
		l.Link,
		l.Notes,
		cfg.PreferNewerLocal,
	))
}

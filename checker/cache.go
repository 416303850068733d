package checker

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/storecheck-cli/storecheck/filesystem"
	"github.com/storecheck-cli/storecheck/key"
	"github.com/storecheck-cli/storecheck/log"
	"github.com/storecheck-cli/storecheck/where"
)

// listing is the remote slice of a Status: what the store published,
// independent of the local application. This is what gets memoized; check
// outcomes themselves are never persisted.
type listing struct {
	Version string            `json:"version"`
	Link    string            `json:"link"`
	Notes   mo.Option[string] `json:"notes"`
}

// Seam for tests; resolving the directory creates it.
var cacheDir = where.Cache

// cacheFile resolves the on-disk location of one memoized listing. The
// storefront is part of the key: the same identifier serves different
// payloads per Play locale and App Store country. Directory resolution
// panics on an unwritable tree, and a broken cache must not take the check
// down with it, so the panic is converted to an error here.
func cacheFile(platform Platform, id, storefront string) (path string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cache directory: %v", r)
		}
	}()

	name := fmt.Sprintf("%s_%s_%s.json", platform, id, storefront)
	return filepath.Join(cacheDir(), name), nil
}

// cachedListing memoizes fetch results per (platform, identifier, storefront)
// when the cache is enabled, with a configurable lifetime. Disabled (the
// default) it calls straight through. Failed fetches are never cached, and an
// unusable cache degrades to a plain fetch.
func cachedListing(platform Platform, id, storefront string, fetch func() mo.Option[listing]) mo.Option[listing] {
	if !viper.GetBool(key.CheckCache) {
		return fetch()
	}

	path, err := cacheFile(platform, id, storefront)
	if err != nil {
		log.Warnf("listing cache skipped: %v", err)
		return fetch()
	}

	cacher := gache.New[*listing](&gache.Options{
		Path:       path,
		Lifetime:   time.Duration(viper.GetInt(key.CheckCacheLifetime)) * time.Hour,
		FileSystem: &filesystem.GacheFs{},
	})

	if cached, expired, err := cacher.Get(); err == nil && !expired && cached != nil {
		return mo.Some(*cached)
	}

	fetched := fetch()
	if l, ok := fetched.Get(); ok {
		_ = cacher.Set(&l)
	}
	return fetched
}

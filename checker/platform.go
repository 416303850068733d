// Package checker orchestrates the update check: it picks the store matching
// the target platform, fetches and parses the listing, and reduces the result
// to a single immutable Status.
package checker

import (
	"fmt"
	"runtime"

	"github.com/storecheck-cli/storecheck/constant"
)

// Platform is the closed set of store targets a check can dispatch to.
// Selecting it once up front keeps the per-store branching in a single place.
type Platform string

const (
	Apple       Platform = "apple"
	Play        Platform = "play"
	Unsupported Platform = "unsupported"
)

// DetectPlatform maps the host operating system to its store.
func DetectPlatform() Platform {
	switch runtime.GOOS {
	case constant.Darwin, constant.Ios:
		return Apple
	case constant.Android:
		return Play
	default:
		return Unsupported
	}
}

// ParsePlatform converts user input (e.g. a CLI flag) to a Platform.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case Apple, Play:
		return Platform(s), nil
	default:
		return Unsupported, fmt.Errorf("unknown platform %q (expected %q or %q)", s, Apple, Play)
	}
}

// Package version provides normalization and comparison of application version strings.
package version

import "regexp"

// Zero is the canonical placeholder for an undiscoverable version.
const Zero = "0.0.0"

var semverPattern = regexp.MustCompile(`\d+\.\d+\.\d+`)

// Normalize reduces arbitrary version text to its first MAJOR.MINOR.PATCH
// substring. Input with no such substring normalizes to "0.0.0"; the function
// is total and never fails.
func Normalize(raw string) string {
	if match := semverPattern.FindString(raw); match != "" {
		return match
	}
	return Zero
}

package version

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// CanUpdate reports whether the store version should be offered as an update
// over the local one.
//
// Fields are compared most significant first, so a difference at an earlier
// field decides the outcome regardless of the remaining ones. When field
// counts differ, missing trailing fields count as zero.
//
// preferNewerLocal is the tie-break policy: whenever the store version is not
// strictly newer (local is ahead, or the two are identical), the flag is
// returned as-is. Passing true therefore forces a positive answer even
// without a version bump, which callers use to surface a changelog; callers
// that only want "store is strictly newer" must pass false.
func CanUpdate(local, store string, preferNewerLocal bool) bool {
	localFields := parseFields(local)
	storeFields := parseFields(store)

	for i := 0; i < max(len(localFields), len(storeFields)); i++ {
		l, s := fieldAt(localFields, i), fieldAt(storeFields, i)

		if s > l {
			return true
		}
		if l > s {
			return preferNewerLocal
		}
	}

	// Exact tie on every field. The policy flag still decides, so equal
	// versions can report an available update when the caller asked for it.
	return preferNewerLocal
}

// parseFields splits a normalized version string into its integer fields.
// Non-numeric fields degrade to zero rather than failing.
func parseFields(v string) []int {
	return lo.Map(strings.Split(v, "."), func(field string, _ int) int {
		var n int
		fmt.Sscanf(field, "%d", &n)
		return n
	})
}

func fieldAt(fields []int, i int) int {
	if i < len(fields) {
		return fields[i]
	}
	return 0
}

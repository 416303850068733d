package checker

import (
	"encoding/json"

	"github.com/samber/mo"
	"github.com/storecheck-cli/storecheck/version"
)

// Status is the immutable outcome of one successful check. Both version
// fields are normalized MAJOR.MINOR.PATCH strings; anything undiscoverable
// appears as "0.0.0".
type Status struct {
	LocalVersion string
	StoreVersion string
	StoreLink    string
	ReleaseNotes mo.Option[string]

	// Tie-break policy captured at construction time, see version.CanUpdate.
	preferNewerLocal bool
}

// NewStatus normalizes both version inputs and captures the tie-break policy.
func NewStatus(localVersion, storeVersion, storeLink string, notes mo.Option[string], preferNewerLocal bool) Status {
	return Status{
		LocalVersion:     version.Normalize(localVersion),
		StoreVersion:     version.Normalize(storeVersion),
		StoreLink:        storeLink,
		ReleaseNotes:     notes,
		preferNewerLocal: preferNewerLocal,
	}
}

// CanUpdate reports whether the caller should offer an update.
func (s Status) CanUpdate() bool {
	return version.CanUpdate(s.LocalVersion, s.StoreVersion, s.preferNewerLocal)
}

// MarshalJSON exposes the computed decision alongside the raw fields, so
// scripted consumers need no comparison logic of their own.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		LocalVersion string            `json:"localVersion"`
		StoreVersion string            `json:"storeVersion"`
		StoreLink    string            `json:"storeLink"`
		ReleaseNotes mo.Option[string] `json:"releaseNotes"`
		CanUpdate    bool              `json:"canUpdate"`
	}{
		LocalVersion: s.LocalVersion,
		StoreVersion: s.StoreVersion,
		StoreLink:    s.StoreLink,
		ReleaseNotes: s.ReleaseNotes,
		CanUpdate:    s.CanUpdate(),
	})
}

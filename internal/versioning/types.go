package versioning

import "encoding/json"

const (
	// LatestLabel is the switcher entry for docs built from the default branch.
	LatestLabel = "latest"
	// StableLabel is the switcher entry for the most recent release.
	StableLabel = "stable"
)

// Entry is one item of the theme's version switcher. It serialises as a
// two-element [label, path] sequence, which is the shape the theme expects.
type Entry struct {
	Label string
	Path  string
}

// NewEntry returns the entry for label served under /label/.
func NewEntry(label string) Entry {
	return Entry{Label: label, Path: "/" + label + "/"}
}

// Pair returns the entry as a [label, path] slice.
func (e Entry) Pair() []string {
	return []string{e.Label, e.Path}
}

// MarshalJSON implements json.Marshaler.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Pair())
}

// MarshalYAML implements yaml.Marshaler.
func (e Entry) MarshalYAML() (any, error) {
	return e.Pair(), nil
}

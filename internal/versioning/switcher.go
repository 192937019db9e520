package versioning

// BuildSwitcher returns the ordered version switcher entries. The latest and
// stable entries always come first; a non-empty stable release name appends a
// third entry for it. The value is used as-is.
func BuildSwitcher(stable string) []Entry {
	entries := []Entry{NewEntry(LatestLabel), NewEntry(StableLabel)}
	if stable != "" {
		entries = append(entries, NewEntry(stable))
	}
	return entries
}

// CurrentVersion selects the version marked active in the switcher. An unset
// value falls back to "latest"; a set value is used verbatim, even when empty.
func CurrentVersion(value string, set bool) string {
	if !set {
		return LatestLabel
	}
	return value
}

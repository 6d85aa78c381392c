package core

// MarkerDocument is a loaded marker database.
// Implementations keep the full document (unrelated sections, metadata and
// attribute order) and apply removals in place.
type MarkerDocument interface {
	// SetNames returns the marker set names in document order.
	SetNames() []string

	// Markers returns the entries of one grouping in document order.
	// A grouping that does not exist yields no markers.
	Markers(set string, kind GroupKind) ([]Marker, error)

	// Remove deletes the entry with the given key from one grouping.
	// Keys are compared by value. It reports whether an entry was removed.
	Remove(set string, kind GroupKind, key string) bool
}

// Package core holds the marker pruning domain: selection areas, the
// keep/delete policy and the two-pass pruner that works on any MarkerDocument.
package core

// Marker attribute names used by the filter.
const (
	AttrWorld = "world"
	AttrX     = "x"
	AttrZ     = "z"
	AttrLabel = "label"
)

// TargetWorld is the world tag governed by the pruner. Markers in any other
// world are never candidates for deletion.
const TargetWorld = "world"

// GroupKind names one of the two marker groupings inside a marker set.
type GroupKind string

const (
	GroupPoints  GroupKind = "markers"
	GroupCircles GroupKind = "circles"
)

// Marker is a read-only view of one marker entry.
// Attributes holds the scalar attributes as their document text; the
// document itself keeps every attribute, scalar or not.
type Marker struct {
	Set        string
	Kind       GroupKind
	Key        string
	Attributes map[string]string
}

// Attr returns the textual value of a scalar attribute.
func (m Marker) Attr(name string) (string, bool) {
	v, ok := m.Attributes[name]
	return v, ok
}

// World returns the marker's world tag, or "" when absent.
func (m Marker) World() string {
	return m.Attributes[AttrWorld]
}

// Label returns the marker's label, or "" when absent.
func (m Marker) Label() string {
	return m.Attributes[AttrLabel]
}

// Coordinates parses the x and z attributes, truncating toward zero.
func (m Marker) Coordinates() (x, z int, err error) {
	if x, err = m.coordinate(AttrX); err != nil {
		return 0, 0, err
	}
	if z, err = m.coordinate(AttrZ); err != nil {
		return 0, 0, err
	}
	return x, z, nil
}

func (m Marker) coordinate(attr string) (int, error) {
	raw, ok := m.Attr(attr)
	if !ok {
		return 0, &CoordinateError{Set: m.Set, Key: m.Key, Attribute: attr, Missing: true}
	}
	v, ok := ParseCoordinate(raw)
	if !ok {
		return 0, &CoordinateError{Set: m.Set, Key: m.Key, Attribute: attr, Value: raw}
	}
	return v, nil
}

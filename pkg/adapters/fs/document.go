package fs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/aretw0/markerprune/pkg/core"
)

// SetsKey is the top-level key holding the marker sets.
const SetsKey = "sets"

// YAMLHeader is written before the document when headers are enabled.
const YAMLHeader = "%YAML 1.1\n---\n"

// Document is a marker database backed by a yaml.v3 node tree.
// Comments, key order and scalar text of everything not removed are kept.
type Document struct {
	root *yaml.Node
	sets *yaml.Node
}

var _ core.MarkerDocument = (*Document)(nil)

// ParseDocument reads a marker document from r.
func ParseDocument(r io.Reader) (*Document, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", core.ErrMalformedDocument)
		}
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: root is not a mapping", core.ErrMalformedDocument)
	}

	sets := mappingValue(root.Content[0], SetsKey)
	if sets == nil || sets.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %q mapping not found", core.ErrMalformedDocument, SetsKey)
	}

	return &Document{root: &root, sets: sets}, nil
}

// LoadDocument reads the marker document at path.
func LoadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &core.MissingFileError{Kind: "markers", Path: path}
		}
		return nil, fmt.Errorf("failed to open markers: %w", err)
	}
	defer f.Close()

	doc, err := ParseDocument(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// SetNames implements core.MarkerDocument.
func (d *Document) SetNames() []string {
	var names []string
	for i := 0; i+1 < len(d.sets.Content); i += 2 {
		if resolve(d.sets.Content[i+1]).Kind == yaml.MappingNode {
			names = append(names, d.sets.Content[i].Value)
		}
	}
	return names
}

// Markers implements core.MarkerDocument.
func (d *Document) Markers(set string, kind core.GroupKind) ([]core.Marker, error) {
	group := d.group(set, kind)
	if group == nil {
		return nil, nil
	}

	markers := make([]core.Marker, 0, len(group.Content)/2)
	for i := 0; i+1 < len(group.Content); i += 2 {
		key := group.Content[i].Value
		props := resolve(group.Content[i+1])
		if props.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: marker %s/%s/%s is not a mapping (line %d)",
				core.ErrMalformedDocument, set, kind, key, group.Content[i].Line)
		}

		attrs := make(map[string]string, len(props.Content)/2)
		for j := 0; j+1 < len(props.Content); j += 2 {
			if v := resolve(props.Content[j+1]); v.Kind == yaml.ScalarNode {
				attrs[props.Content[j].Value] = v.Value
			}
		}

		markers = append(markers, core.Marker{Set: set, Kind: kind, Key: key, Attributes: attrs})
	}
	return markers, nil
}

// Remove implements core.MarkerDocument.
func (d *Document) Remove(set string, kind core.GroupKind, key string) bool {
	group := d.group(set, kind)
	if group == nil {
		return false
	}
	for i := 0; i+1 < len(group.Content); i += 2 {
		if group.Content[i].Value == key {
			group.Content = append(group.Content[:i], group.Content[i+2:]...)
			return true
		}
	}
	return false
}

// Encode writes the document to w, optionally preceded by YAMLHeader.
// Block sequences are written at the indentation of their key, the way
// Dynmap writes them.
func (d *Document) Encode(w io.Writer, header bool) error {
	if header {
		if _, err := io.WriteString(w, YAMLHeader); err != nil {
			return err
		}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	encoder.CompactSeqIndent()
	if err := encoder.Encode(d.root); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return encoder.Close()
}

// WriteFile atomically replaces path with the encoded document.
func (d *Document) WriteFile(path string, header bool) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		return d.Encode(w, header)
	}, 0644)
}

// group returns the mapping node of one grouping, or nil when the set or the
// grouping is absent or empty (a null value).
func (d *Document) group(set string, kind core.GroupKind) *yaml.Node {
	setNode := mappingValue(d.sets, set)
	if setNode == nil || setNode.Kind != yaml.MappingNode {
		return nil
	}
	group := mappingValue(setNode, string(kind))
	if group == nil || group.Kind != yaml.MappingNode {
		return nil
	}
	return group
}

// mappingValue returns the (alias-resolved) value stored under key, compared by value.
func mappingValue(mapping *yaml.Node, key string) *yaml.Node {
	mapping = resolve(mapping)
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return resolve(mapping.Content[i+1])
		}
	}
	return nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

package fs

import (
	"fmt"
	"io"

	"github.com/aretw0/markerprune/pkg/core"
)

// WriteManifestTo writes one "label<TAB>(id key)" line per deletion.
func WriteManifestTo(w io.Writer, deletions []core.Deletion) error {
	for _, d := range deletions {
		if _, err := fmt.Fprintf(w, "%s\t(id %s)\n", d.Label, d.Key); err != nil {
			return err
		}
	}
	return nil
}

// WriteManifest atomically writes the deletions manifest to path.
func WriteManifest(path string, deletions []core.Deletion) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		return WriteManifestTo(w, deletions)
	}, 0644)
}

// Package markerprune removes Dynmap markers that fall inside or outside a
// list of selected map regions and chunks.
//
// A run reads a marker document (the YAML file Dynmap keeps under
// plugins/dynmap/markers.yml) and a selection list in which every line is
// either a region "x;z" or a chunk "rx;rz;cx;cz". Markers of the target world
// are matched against the selected areas and, depending on the prune mode,
// the ones inside (Inclusive) or outside (Exclusive) are removed. The pruned
// document and a manifest of removed markers are written next to each other.
//
// Usage:
//
//	cfg := markerprune.DefaultConfig()
//	cfg.Mode = markerprune.Inclusive
//	report, err := markerprune.Run(ctx, cfg, markerprune.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	fmt.Println(report.Deleted.Len(), "markers removed")
//
// Watch keeps the output up to date while the inputs are edited:
//
//	err := markerprune.Watch(ctx, cfg)
package markerprune

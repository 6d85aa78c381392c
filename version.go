package markerprune

import _ "embed"

// Version is the release of the library and the command line tool.
//
//go:embed VERSION
var Version string

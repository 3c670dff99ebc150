package assets

import (
	_ "embed"
)

//go:embed HELP.md
var Help string

//go:embed txgraph.svg
var IconBytes []byte

//go:embed window_marker.svg
var WindowMarkerBytes []byte

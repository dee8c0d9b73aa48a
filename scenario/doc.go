// Package scenario loads grid scenarios and viewer settings from YAML or
// HCL files and computes the default board layout.
//
// A scenario file names a grid in ASCII form (see gridgraph.Parse) or, when
// the grid is omitted, a size for a generated empty board:
//
//	# corridor.yaml
//	name: corridor
//	grid:
//	  - "S..#...."
//	  - "...#..#."
//	  - "......#E"
//	animate: true
//	step_interval: 50ms
//
//	# corridor.hcl
//	name          = "corridor"
//	grid          = ["S..#....", "...#..#.", "......#E"]
//	animate       = true
//	step_interval = "50ms"
//
// The format is picked from the file extension: .yaml, .yml or .hcl.
package scenario

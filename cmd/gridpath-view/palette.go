package main

import (
	"image/color"

	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	borderColor  = color.RGBA{0x55, 0x55, 0x55, 0xff}
	emptyColor   = color.RGBA{0x00, 0x00, 0x00, 0xff}
	startColor   = color.RGBA{0x34, 0xc7, 0x59, 0xff}
	endColor     = color.RGBA{0xff, 0x3b, 0x30, 0xff}
	barrierColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	pathColor    = color.RGBA{0x5a, 0xc8, 0xfa, 0xff}
)

// background is the tile fill for st.
func background(st gridgraph.CellState) color.Color {
	switch st {
	case gridgraph.Start:
		return startColor
	case gridgraph.End:
		return endColor
	case gridgraph.Barrier:
		return barrierColor
	default:
		return emptyColor
	}
}

// foreground is the marker drawn inside path and visited tiles. Visited
// tiles get a hue that varies from cell to cell.
func foreground(st gridgraph.CellState, c gridgraph.Coordinate) (color.Color, bool) {
	switch st {
	case gridgraph.Path:
		return pathColor, true
	case gridgraph.Checking:
		return hue(uint32(c.Row)*73856093 ^ uint32(c.Column)*19349663), true
	default:
		return nil, false
	}
}

// hue maps h onto a fully saturated colour wheel.
func hue(h uint32) color.RGBA {
	sector := h % 1536
	x := uint8(sector % 256)
	switch sector / 256 {
	case 0:
		return color.RGBA{0xff, x, 0, 0xff}
	case 1:
		return color.RGBA{0xff - x, 0xff, 0, 0xff}
	case 2:
		return color.RGBA{0, 0xff, x, 0xff}
	case 3:
		return color.RGBA{0, 0xff - x, 0xff, 0xff}
	case 4:
		return color.RGBA{x, 0, 0xff, 0xff}
	default:
		return color.RGBA{0xff, 0, 0xff - x, 0xff}
	}
}

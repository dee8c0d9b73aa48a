package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/prefs"
	"github.com/katalvlaran/gridpath/pathfinder"
)

const statusHeight = 20

// game adapts a board.Board to the ebiten update loop. Search results are
// applied in Update by draining the queue, so the board is only touched
// from the ebiten goroutine.
type game struct {
	board    *board.Board
	queue    *pathfinder.MainQueue
	prefs    *prefs.Manager
	tile     int
	interval time.Duration
	now      func() time.Time

	lastStep time.Time
	dragging bool
	last     gridgraph.Coordinate

	pixel *ebiten.Image
}

func newGame(b *board.Board, q *pathfinder.MainQueue, pm *prefs.Manager, tile int, interval time.Duration) *game {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &game{
		board:    b,
		queue:    q,
		prefs:    pm,
		tile:     tile,
		interval: interval,
		now:      time.Now,
		pixel:    pixel,
	}
}

// cellAt maps a screen position to a grid cell.
func (g *game) cellAt(x, y int) (gridgraph.Coordinate, bool) {
	if x < 0 || y < 0 {
		return gridgraph.Coordinate{}, false
	}
	c := gridgraph.Coordinate{Row: y / g.tile, Column: x / g.tile}
	if c.Row >= g.board.Rows() || c.Column >= g.board.Columns() {
		return gridgraph.Coordinate{}, false
	}
	return c, true
}

// Update handles input, applies delivered results and advances playback.
func (g *game) Update() error {
	g.queue.Drain()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		on := !g.board.Animated()
		g.board.SetAnimated(on)
		g.prefs.SetAnimate(on)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.board.Clear()
	}

	x, y := ebiten.CursorPosition()
	c, inside := g.cellAt(x, y)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if inside {
			g.board.Press(c)
			g.dragging, g.last = true, c
		}
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.board.Release()
		g.dragging = false
	case g.dragging && inside && c != g.last:
		g.board.Move(c)
		g.last = c
	}

	g.step()
	return nil
}

// step plays one animation frame per interval.
func (g *game) step() {
	if !g.board.Playing() {
		g.lastStep = time.Time{}
		return
	}
	now := g.now()
	if !g.lastStep.IsZero() && now.Sub(g.lastStep) < g.interval {
		return
	}
	g.board.Tick()
	g.lastStep = now
}

// Draw paints every tile and the status line.
func (g *game) Draw(screen *ebiten.Image) {
	cells := g.board.Snapshot()
	for r, row := range cells {
		for c, st := range row {
			g.drawTile(screen, gridgraph.Coordinate{Row: r, Column: c}, st)
		}
	}

	status := "A animate: off"
	if g.board.Animated() {
		status = "A animate: on"
	}
	if res, ok := g.board.Result(); ok {
		if res.Found() {
			status += fmt.Sprintf("  path %d cost %.2f", len(res.Path), res.Cost)
		} else {
			status += "  no path"
		}
	}
	ebitenutil.DebugPrintAt(screen, status+"  C clear", 4, g.board.Rows()*g.tile+2)
}

func (g *game) drawTile(screen *ebiten.Image, c gridgraph.Coordinate, st gridgraph.CellState) {
	x, y := float64(c.Column*g.tile), float64(c.Row*g.tile)
	size := float64(g.tile)

	g.fillRect(screen, x, y, size, size, borderColor)
	g.fillRect(screen, x+1, y+1, size-2, size-2, background(st))
	if fg, ok := foreground(st, c); ok {
		inset := size / 4
		g.fillRect(screen, x+inset, y+inset, size-2*inset, size-2*inset, fg)
	}
}

func (g *game) fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(w, h)
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(g.pixel, opts)
}

// Layout keeps one fixed-size tile per cell plus the status line.
func (g *game) Layout(_, _ int) (int, int) {
	return g.board.Columns() * g.tile, g.board.Rows()*g.tile + statusHeight
}

package board

import "github.com/katalvlaran/gridpath/gridgraph"

// toggle returns the state a brush stroke turns s into. Start and End are
// never painted.
func toggle(s gridgraph.CellState) (gridgraph.CellState, bool) {
	switch s {
	case gridgraph.Empty, gridgraph.Path, gridgraph.Checking:
		return gridgraph.Barrier, true
	case gridgraph.Barrier:
		return gridgraph.Empty, true
	default:
		return s, false
	}
}

// Press begins a gesture at c. Pressing the start or end cell picks it up
// for dragging; any other cell is toggled between Barrier and Empty.
// It reports whether the grid changed.
func (b *Board) Press(c gridgraph.Coordinate) bool {
	b.mu.Lock()
	if !b.inBounds(c) {
		b.mu.Unlock()
		return false
	}
	st := b.cells[c.Row][c.Column]
	b.held, b.holding = st, true
	b.displaced = gridgraph.Empty

	next, ok := toggle(st)
	if !ok {
		b.mu.Unlock()
		return false
	}
	b.cells[c.Row][c.Column] = next
	_ = b.requestLocked()
	b.mu.Unlock()

	b.notify([]gridgraph.Coordinate{c})
	return true
}

// Move continues the gesture onto c. While dragging the start or end cell
// it moves there, and the vacated cell gets back the state it covered.
// Otherwise c is toggled like Press. Moving onto the start or end cell does
// nothing. It reports whether the grid changed.
func (b *Board) Move(c gridgraph.Coordinate) bool {
	b.mu.Lock()
	if !b.inBounds(c) {
		b.mu.Unlock()
		return false
	}
	st := b.cells[c.Row][c.Column]
	if st == gridgraph.Start || st == gridgraph.End {
		b.mu.Unlock()
		return false
	}

	changed := []gridgraph.Coordinate{c}
	switch {
	case b.holding && b.held == gridgraph.Start:
		b.cells[b.start.Row][b.start.Column] = b.displaced
		b.displaced = st
		b.cells[c.Row][c.Column] = gridgraph.Start
		changed = append(changed, b.start)
		b.start = c
	case b.holding && b.held == gridgraph.End:
		b.cells[b.end.Row][b.end.Column] = b.displaced
		b.displaced = st
		b.cells[c.Row][c.Column] = gridgraph.End
		changed = append(changed, b.end)
		b.end = c
	default:
		next, _ := toggle(st)
		b.cells[c.Row][c.Column] = next
	}
	_ = b.requestLocked()
	b.mu.Unlock()

	b.notify(changed)
	return true
}

// Release ends the current gesture.
func (b *Board) Release() {
	b.mu.Lock()
	b.holding = false
	b.displaced = gridgraph.Empty
	b.mu.Unlock()
}

// Clear resets every barrier and overlay cell to Empty and searches again.
func (b *Board) Clear() {
	b.mu.Lock()
	for _, row := range b.cells {
		for c, st := range row {
			switch st {
			case gridgraph.Barrier, gridgraph.Path, gridgraph.Checking:
				row[c] = gridgraph.Empty
			}
		}
	}
	_ = b.requestLocked()
	b.mu.Unlock()

	b.notify(nil)
}

// SetAnimated switches step-by-step playback on or off and searches again
// so the new mode takes effect.
func (b *Board) SetAnimated(on bool) {
	b.mu.Lock()
	b.animated = on
	_ = b.requestLocked()
	b.mu.Unlock()
}

// Refresh searches the current grid again.
func (b *Board) Refresh() {
	b.mu.Lock()
	_ = b.requestLocked()
	b.mu.Unlock()
}

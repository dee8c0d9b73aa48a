package board

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathfinder"
)

// Apply replaces the overlay with res. Previous Path and Checking marks are
// removed; the new path is painted at once, or played back by Tick when
// the board is animated. Cells outside the grid are ignored. Results from the Board's own searches are applied
// automatically; Apply is for results computed elsewhere.
func (b *Board) Apply(res pathfinder.Result) {
	b.mu.Lock()
	changed := b.applyLocked(res)
	b.mu.Unlock()
	b.notify(changed)
}

// Tick plays one animation step: the next visited Empty cell is marked
// Checking. After the last step the marks are removed and the path is
// painted. It reports whether an animation was in progress.
func (b *Board) Tick() bool {
	b.mu.Lock()
	if !b.playing {
		b.mu.Unlock()
		return false
	}

	var changed []gridgraph.Coordinate
	steps := b.result.Steps
	if len(steps) == 0 {
		changed = b.finishLocked()
	} else {
		p := steps[b.cursor]
		if b.inBounds(p) && b.cells[p.Row][p.Column] == gridgraph.Empty {
			b.cells[p.Row][p.Column] = gridgraph.Checking
			changed = append(changed, p)
		}
		if b.cursor+1 >= len(steps) {
			changed = append(changed, b.finishLocked()...)
		} else {
			b.cursor++
		}
	}
	b.mu.Unlock()

	if len(changed) > 0 {
		b.notify(changed)
	}
	return true
}

func (b *Board) applyLocked(res pathfinder.Result) []gridgraph.Coordinate {
	changed := b.stopLocked()
	changed = append(changed, b.clearPathLocked()...)

	b.result = &res
	b.cursor = 0
	if b.animated {
		b.playing = true
		return changed
	}
	return append(changed, b.paintPathLocked()...)
}

// stopLocked ends playback and removes the Checking marks it placed.
func (b *Board) stopLocked() []gridgraph.Coordinate {
	b.playing = false
	if b.result == nil || b.cursor >= len(b.result.Steps) {
		b.cursor = 0
		return nil
	}
	var changed []gridgraph.Coordinate
	for _, p := range b.result.Steps[:b.cursor+1] {
		if b.inBounds(p) && b.cells[p.Row][p.Column] == gridgraph.Checking {
			b.cells[p.Row][p.Column] = gridgraph.Empty
			changed = append(changed, p)
		}
	}
	b.cursor = 0
	return changed
}

func (b *Board) finishLocked() []gridgraph.Coordinate {
	return append(b.stopLocked(), b.paintPathLocked()...)
}

func (b *Board) clearPathLocked() []gridgraph.Coordinate {
	if b.result == nil {
		return nil
	}
	var changed []gridgraph.Coordinate
	for _, p := range b.result.Path {
		if b.inBounds(p) && b.cells[p.Row][p.Column] == gridgraph.Path {
			b.cells[p.Row][p.Column] = gridgraph.Empty
			changed = append(changed, p)
		}
	}
	return changed
}

func (b *Board) paintPathLocked() []gridgraph.Coordinate {
	if b.result == nil {
		return nil
	}
	var changed []gridgraph.Coordinate
	for _, p := range b.result.Path {
		if b.inBounds(p) && b.cells[p.Row][p.Column] == gridgraph.Empty {
			b.cells[p.Row][p.Column] = gridgraph.Path
			changed = append(changed, p)
		}
	}
	return changed
}

// Package board maintains an editable grid and keeps its shortest-path
// overlay in sync with a pathfinder.Finder.
//
// A Board owns the live cell matrix. Each edit (drawing barriers, dragging
// the start or end cell, clearing, toggling animation) snapshots the grid
// and issues a fresh search; older searches are superseded. Results come
// back through the Finder's Dispatcher and are painted onto the grid,
// either at once or one visited cell per Tick when animation is on.
//
// Gestures follow pointer semantics:
//
//	Press(c)   begin a gesture on c: toggle a barrier, or pick up start/end
//	Move(c)    continue it: drag start/end to c, or toggle c
//	Release()  end it
//
// Start and end cells are never painted over. A dragged start or end cell
// restores whatever it covered when it moves on.
//
// Board methods are safe for concurrent use, but a UI normally drives it
// from one goroutine and delivers results with a pathfinder.MainQueue
// drained on that same goroutine.
package board

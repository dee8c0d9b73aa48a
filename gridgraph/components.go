package gridgraph

// Reachable returns every cell that can be reached from start under the
// movement rule, start included, in breadth-first order. The start cell
// itself is always included even when it is a barrier, matching how a
// search seeds its queue.
//
// Returns nil if start is out of bounds.
// Time:   O(R×C×8).
// Memory: O(R×C) for visited flags and output.
func (g *Grid) Reachable(start Coordinate) []Coordinate {
	if !g.InBounds(start) {
		return nil
	}
	seen := make([]bool, g.Size())
	return g.flood(start, seen)
}

// Components groups all passable cells into connected regions under the
// movement rule. Regions are listed in row-major order of their first cell;
// cells within a region are in breadth-first order.
//
// Time:   O(R×C×8).
// Memory: O(R×C).
func (g *Grid) Components() [][]Coordinate {
	seen := make([]bool, g.Size())
	var comps [][]Coordinate
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Columns; c++ {
			at := Coordinate{Row: r, Column: c}
			if !g.cells[r][c].Passable() || seen[g.ID(at)] {
				continue
			}
			comps = append(comps, g.flood(at, seen))
		}
	}
	return comps
}

// flood collects the region around from, marking cells in seen.
func (g *Grid) flood(from Coordinate, seen []bool) []Coordinate {
	seen[g.ID(from)] = true
	queue := []Coordinate{from}
	steps := make([]Step, 0, len(neighborOffsets))
	for qi := 0; qi < len(queue); qi++ {
		steps = g.AppendNeighbors(steps[:0], queue[qi])
		for _, s := range steps {
			id := g.ID(s.To)
			if seen[id] {
				continue
			}
			seen[id] = true
			queue = append(queue, s.To)
		}
	}
	return queue
}

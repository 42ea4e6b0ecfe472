package gridgraph

// ConnectedComponents finds all contiguous regions of walkable cells,
// according to gg.Conn connectivity.
// Returns a slice of components; each component lists its cells in
// row-major order, and components are ordered by their first cell.
//
// Time:   O(W·H·d) on the first call, d = 4 or 8; labels are cached.
// Memory: O(W·H) for labels and output.
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	gg.labelOnce.Do(gg.label)
	comps := make([][]Cell, gg.compCount)
	for i, l := range gg.labels {
		if l >= 0 {
			comps[l] = append(comps[l], gg.Coordinate(i))
		}
	}

	return comps
}

// Connected reports whether a and b are walkable and lie in the same component.
// After the first call it answers in O(1).
func (gg *GridGraph) Connected(a, b Cell) bool {
	if !gg.Walkable(a) || !gg.Walkable(b) {
		return false
	}
	gg.labelOnce.Do(gg.label)

	return gg.labels[gg.index(a.Row, a.Col)] == gg.labels[gg.index(b.Row, b.Col)]
}

// label assigns a component id to every walkable cell (-1 for blocked ones)
// with one BFS per unlabeled walkable cell.
func (gg *GridGraph) label() {
	total := gg.Rows * gg.Cols
	gg.labels = make([]int, total)
	for i := range gg.labels {
		gg.labels[i] = -1
	}
	gg.compCount = 0

	var queue []int
	for i0 := 0; i0 < total; i0++ {
		if !gg.walkable[i0] || gg.labels[i0] >= 0 {
			continue
		}
		// BFS to collect component
		id := gg.compCount
		gg.compCount++
		gg.labels[i0] = id
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := gg.Coordinate(queue[qi])
			for _, d := range gg.neighborOffsets {
				vr, vc := u.Row+d[0], u.Col+d[1]
				if !gg.InBounds(vr, vc) {
					continue
				}
				vi := gg.index(vr, vc)
				if gg.walkable[vi] && gg.labels[vi] < 0 {
					gg.labels[vi] = id
					queue = append(queue, vi)
				}
			}
		}
	}
}

package maze

// Reachable reports whether a path of open edges connects from and to on
// a size×size grid. An edge between two adjacent cells is open iff its
// canonical wall is absent from walls. The traversal is a breadth-first
// search with a visited set, so it terminates for any input and visits
// each cell at most once. from == to is trivially reachable.
func Reachable(walls WallSet, from, to CellPosition, size int) bool {
	if from == to {
		return true
	}

	visited := make(map[CellPosition]struct{}, size*size)
	visited[from] = struct{}{}
	queue := []CellPosition{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, dir := range [4]Direction{Up, Down, Left, Right} {
			next, ok := Neighbor(cur, dir, size)
			if !ok {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}
			if walls.Has(EdgeBetween(cur, dir)) {
				continue
			}
			if next == to {
				return true
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}

	return false
}

package maze

// Orientation distinguishes the two canonical wall placements of a cell.
type Orientation int

const (
	// RightWall is the edge between (x,y) and (x+1,y).
	RightWall Orientation = iota
	// BottomWall is the edge between (x,y) and (x,y+1).
	BottomWall
)

// String returns the lowercase name of the orientation.
func (o Orientation) String() string {
	if o == RightWall {
		return "right"
	}
	return "bottom"
}

// Wall is a single wall segment between two adjacent cells, stored in
// canonical form: every edge has exactly one Wall value. The edge on the
// left side of (x+1,y) and the edge on the right side of (x,y) are the
// same Wall{x, y, RightWall}.
type Wall struct {
	X           int         `json:"x"`
	Y           int         `json:"y"`
	Orientation Orientation `json:"orientation"`
}

// EdgeBetween returns the canonical Wall crossed when moving from pos in
// the given direction. Left and Up moves are folded onto the neighboring
// cell's right and bottom walls. Callers are expected to have bounds
// checked the move via Neighbor first.
func EdgeBetween(pos CellPosition, dir Direction) Wall {
	switch dir {
	case Right:
		return Wall{X: pos.X, Y: pos.Y, Orientation: RightWall}
	case Left:
		return Wall{X: pos.X - 1, Y: pos.Y, Orientation: RightWall}
	case Down:
		return Wall{X: pos.X, Y: pos.Y, Orientation: BottomWall}
	default: // Up
		return Wall{X: pos.X, Y: pos.Y - 1, Orientation: BottomWall}
	}
}

// inBounds reports whether the wall's coordinates are valid for a
// size×size grid given its orientation.
func (w Wall) inBounds(size int) bool {
	if w.X < 0 || w.Y < 0 {
		return false
	}
	if w.Orientation == RightWall {
		return w.X < size-1 && w.Y < size
	}
	return w.X < size && w.Y < size-1
}

// WallSet is an unordered collection of canonical walls with set
// semantics: adding a wall twice keeps a single entry.
type WallSet map[Wall]struct{}

// NewWallSet returns an empty WallSet.
func NewWallSet() WallSet {
	return make(WallSet)
}

// Add inserts the wall. Re-adding an existing wall is a no-op.
func (ws WallSet) Add(w Wall) {
	ws[w] = struct{}{}
}

// Remove deletes the wall if present.
func (ws WallSet) Remove(w Wall) {
	delete(ws, w)
}

// Has reports whether the wall is in the set.
func (ws WallSet) Has(w Wall) bool {
	_, ok := ws[w]
	return ok
}

// Len returns the number of walls in the set.
func (ws WallSet) Len() int {
	return len(ws)
}

// Walls returns the set contents as a slice in unspecified order.
func (ws WallSet) Walls() []Wall {
	out := make([]Wall, 0, len(ws))
	for w := range ws {
		out = append(out, w)
	}
	return out
}

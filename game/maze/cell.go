package maze

// Direction identifies one of the four cardinal moves on the grid.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps a direction name to its Direction value.
// The second return value is false for unrecognized names.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	default:
		return 0, false
	}
}

// CellPosition is the position of a cell on the grid, 0-indexed from the
// top-left corner. X grows rightward, Y grows downward.
type CellPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// delta per direction, indexed by Direction.
var deltas = [4]struct{ dx, dy int }{
	Up:    {0, -1},
	Down:  {0, 1},
	Left:  {-1, 0},
	Right: {1, 0},
}

// Neighbor returns the cell adjacent to pos in the given direction.
// The second return value is false when the move would leave the
// size×size grid.
func Neighbor(pos CellPosition, dir Direction, size int) (CellPosition, bool) {
	d := deltas[dir]
	next := CellPosition{X: pos.X + d.dx, Y: pos.Y + d.dy}
	if next.X < 0 || next.X >= size || next.Y < 0 || next.Y >= size {
		return CellPosition{}, false
	}
	return next, true
}

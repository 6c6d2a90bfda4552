package game

import "github.com/keymaze/keymaze-api/game/maze"

// Maze defines what a run needs from a generated level. Implemented by
// *maze.KeyDoorMaze; runs never mutate the maze.
type Maze interface {
	Size() int
	Start() maze.CellPosition
	Key() maze.CellPosition
	Door() maze.CellPosition
	HasWall(maze.Wall) bool
	WallCount() int
}

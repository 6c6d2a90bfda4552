package i

import (
	"github.com/google/uuid"
	"github.com/keymaze/keymaze-api/game/maze"
)

// LevelInfo describes a freshly generated level. The wall layout itself
// is withheld; clients learn walls one collision at a time.
type LevelInfo struct {
	Size      int
	WallCount int
	Mode      string
	Start     maze.CellPosition
	Key       maze.CellPosition
	Door      maze.CellPosition
}

// RunSnapshot is the render view of a live run: position, progress, and
// only the walls the player has already discovered.
type RunSnapshot struct {
	Status         string
	Position       maze.CellPosition
	HasKey         bool
	Attempts       int
	ElapsedSeconds int
	Revealed       []maze.Wall
}

// MoveResult reports the outcome of one resolved move request.
type MoveResult struct {
	Outcome        string
	Wall           *maze.Wall
	ElapsedSeconds int
	Attempts       int
	Score          int
}

// GameSessionManager owns the single live run of each player.
type GameSessionManager interface {
	// StartLevel generates a maze and opens a fresh run for the player,
	// replacing any previous one.
	StartLevel(playerID uuid.UUID, size, targetWalls int, challenge bool) (*LevelInfo, error)

	// Move resolves one move request for the player's live run.
	Move(playerID uuid.UUID, dir maze.Direction) (*MoveResult, error)

	// State returns the render snapshot of the player's live run.
	State(playerID uuid.UUID) (*RunSnapshot, error)

	// Abandon discards the player's live run, if any.
	Abandon(playerID uuid.UUID)
}

// Package gameapi exposes level play over HTTP: starting levels, moving
// through them, and reading the revealed state.
package gameapi

import (
	"github.com/keymaze/keymaze-api/game/maze"
)

// StartLevelRequest asks for a fresh level.
type StartLevelRequest struct {
	Size      int  `json:"size"`
	WallCount int  `json:"wall_count"`
	Challenge bool `json:"challenge"`
}

// StartLevelResponse describes the generated level. The wall layout is
// withheld; only the landmarks the client must render are included.
type StartLevelResponse struct {
	Size      int               `json:"size"`
	WallCount int               `json:"wall_count"`
	Mode      string            `json:"mode"`
	Start     maze.CellPosition `json:"start"`
	Key       maze.CellPosition `json:"key"`
	Door      maze.CellPosition `json:"door"`
}

// MoveRequest asks to move the actor one cell.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// MoveResponse reports the outcome of a move request.
type MoveResponse struct {
	Outcome        string     `json:"outcome"`
	Wall           *maze.Wall `json:"wall,omitempty"`
	ElapsedSeconds int        `json:"elapsed_seconds,omitempty"`
	Attempts       int        `json:"attempts,omitempty"`
	Score          int        `json:"score,omitempty"`
}

// StateResponse is the render view of the live run.
type StateResponse struct {
	Status         string            `json:"status"`
	Position       maze.CellPosition `json:"position"`
	HasKey         bool              `json:"has_key"`
	Attempts       int               `json:"attempts"`
	ElapsedSeconds int               `json:"elapsed_seconds"`
	Revealed       []maze.Wall       `json:"revealed_walls"`
}

// LeaderboardEntryResponse is one ranked leaderboard row.
type LeaderboardEntryResponse struct {
	PlayerID string `json:"player_id"`
	Score    int    `json:"score"`
}

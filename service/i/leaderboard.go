package i

import (
	"context"

	"github.com/google/uuid"
)

// LeaderboardEntry is one ranked row of the leaderboard.
type LeaderboardEntry struct {
	PlayerID uuid.UUID
	Score    int
}

// Leaderboard ranks players by their best level score.
type Leaderboard interface {
	// Submit records a finished level's score for the player.
	Submit(ctx context.Context, playerID uuid.UUID, score int) error

	// Top returns up to n entries, best score first.
	Top(ctx context.Context, n int64) ([]LeaderboardEntry, error)
}

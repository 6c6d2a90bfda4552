package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/keymaze/keymaze-api/service/i"
)

const (
	defaultLeaderboardKey = "leaderboard:best_scores"
)

// Options holds leaderboard configuration.
type Options struct {
	// Key under which scores are stored. Defaults to a shared global board.
	Key string
}

// Leaderboard ranks players by their best score in a sorted queue. A
// submission only moves a player up: a score below their current best is
// dropped.
type Leaderboard struct {
	sortedQueue i.SortedQueue
	logger      i.Logger
	key         string
}

// NewLeaderboard creates a Leaderboard over the given sorted queue.
func NewLeaderboard(sortedQueue i.SortedQueue, logger i.Logger, opts *Options) (*Leaderboard, error) {
	key := defaultLeaderboardKey
	if opts != nil && opts.Key != "" {
		key = opts.Key
	}

	return &Leaderboard{
		sortedQueue: sortedQueue,
		logger:      logger,
		key:         key,
	}, nil
}

// Submit records a finished level's score for the player, keeping the
// player's best.
func (lb *Leaderboard) Submit(ctx context.Context, playerID uuid.UUID, score int) error {
	current, ok, err := lb.sortedQueue.ScoreOf(ctx, lb.key, playerID.String())
	if err != nil {
		return err
	}
	if ok && int(current) >= score {
		return nil
	}

	if err := lb.sortedQueue.Enqueue(ctx, lb.key, float64(score), playerID.String()); err != nil {
		lb.logger.Error(fmt.Sprintf("enqueueing leaderboard score: %s", err))
		return err
	}

	lb.logger.Info(fmt.Sprintf("leaderboard score recorded: player=%s score=%d", playerID, score))
	return nil
}

// Top returns up to n leaderboard entries, best score first.
func (lb *Leaderboard) Top(ctx context.Context, n int64) ([]i.LeaderboardEntry, error) {
	members, err := lb.sortedQueue.TopN(ctx, lb.key, n)
	if err != nil {
		return nil, err
	}

	entries := make([]i.LeaderboardEntry, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m.Member)
		if err != nil {
			lb.logger.Warning(fmt.Sprintf("non-UUID member on leaderboard: %s", m.Member))
			continue
		}
		entries = append(entries, i.LeaderboardEntry{PlayerID: id, Score: int(m.Score)})
	}

	return entries, nil
}

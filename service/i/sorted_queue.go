package i

import "context"

// SortedQueue is a score-ordered collection keyed by member string.
type SortedQueue interface {
	// Enqueue adds or updates a member with the given score.
	Enqueue(ctx context.Context, key string, score float64, member string) error

	// TopN returns up to n members with the highest scores, best first,
	// together with their scores.
	TopN(ctx context.Context, key string, n int64) ([]ScoredMember, error)

	// ScoreOf returns the member's score. The boolean is false when the
	// member is not in the queue.
	ScoreOf(ctx context.Context, key, member string) (float64, bool, error)

	// Count returns the number of members under the key.
	Count(ctx context.Context, key string) int64
}

// ScoredMember pairs a queue member with its score.
type ScoredMember struct {
	Member string
	Score  float64
}

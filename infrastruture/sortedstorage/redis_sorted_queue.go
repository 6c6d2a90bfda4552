package sortedstorage

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/keymaze/keymaze-api/service/i"
	"github.com/redis/go-redis/v9"
)

// RedisSortedQueue manages a sorted queue in Redis with TTL support.
type RedisSortedQueue struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisSortedQueue initializes a RedisSortedQueue with the provided Redis client and TTL.
// A ttlSeconds of zero keeps entries forever.
func NewRedisSortedQueue(client *redis.Client, ttlSeconds int) (i.SortedQueue, error) {
	queue := &RedisSortedQueue{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	queue.locker = redsync.New(pool)
	return queue, nil
}

// Enqueue adds a member to the sorted queue with a given score and sets expiration if necessary.
func (rsq *RedisSortedQueue) Enqueue(ctx context.Context, queueKey string, score float64, member string) error {
	mutex := rsq.locker.NewMutex(queueKey + ":write_lock")
	if err := mutex.Lock(); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	_, err := rsq.client.ZAdd(ctx, queueKey, redis.Z{Score: score, Member: member}).Result()
	if err != nil {
		return err
	}

	// Set expiration only if it's not already set
	if rsq.ttl > 0 {
		ttl, err := rsq.client.TTL(ctx, queueKey).Result()
		if err == nil && ttl == -1 {
			_ = rsq.client.Expire(ctx, queueKey, rsq.ttl).Err()
		}
	}

	return nil
}

// TopN retrieves up to `n` members with the highest scores, best first.
func (rsq *RedisSortedQueue) TopN(ctx context.Context, queueKey string, n int64) ([]i.ScoredMember, error) {
	if n <= 0 {
		return nil, nil
	}

	raw, err := rsq.client.ZRevRangeWithScores(ctx, queueKey, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	members := make([]i.ScoredMember, 0, len(raw))
	for _, z := range raw {
		members = append(members, i.ScoredMember{
			Member: z.Member.(string),
			Score:  z.Score,
		})
	}
	return members, nil
}

// ScoreOf returns the member's score, with false when the member is absent.
func (rsq *RedisSortedQueue) ScoreOf(ctx context.Context, queueKey, member string) (float64, bool, error) {
	score, err := rsq.client.ZScore(ctx, queueKey, member).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return score, true, nil
}

// Count returns the number of members in the sorted queue.
func (rsq *RedisSortedQueue) Count(ctx context.Context, queueKey string) int64 {
	return rsq.client.ZCard(ctx, queueKey).Val()
}

// Package dedup detects which wagers in an import are actually new or
// changed. Saved history pages overlap heavily between exports; comparing
// against a Redis cache keyed by reference id keeps re-imports cheap and
// idempotent without a DB round trip per wager.
package dedup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/XavierBriggs/Scribe/pkg/models"
)

// Engine detects changes in imported wagers by comparing against Redis
type Engine struct {
	redis *redis.Client
	ttl   time.Duration
}

// CachedWager is the minimal data stored in Redis for comparison
type CachedWager struct {
	Result models.BetResult `json:"result"`
	Payout *float64         `json:"payout,omitempty"`
	SeenAt time.Time        `json:"seen_at"`
}

// ChangeType indicates what changed for one wager between imports
type ChangeType string

const (
	ChangeTypeNew     ChangeType = "new"     // reference id never seen
	ChangeTypeSettled ChangeType = "settled" // result or payout moved
	ChangeTypeNone    ChangeType = "none"
)

// Delta represents one detected change
type Delta struct {
	Wager      models.Wager
	ChangeType ChangeType
	OldResult  models.BetResult
}

// NewEngine creates a new dedup engine
func NewEngine(redisClient *redis.Client, cacheTTL time.Duration) *Engine {
	return &Engine{redis: redisClient, ttl: cacheTTL}
}

// DetectChanges compares extracted wagers against the cache and returns only
// the ones worth writing
func (e *Engine) DetectChanges(ctx context.Context, wagers []models.Wager) ([]Delta, error) {
	if len(wagers) == 0 {
		return nil, nil
	}

	keys := make([]string, len(wagers))
	for i := range wagers {
		keys[i] = e.buildKey(&wagers[i])
	}

	cachedValues, err := e.redis.MGet(ctx, keys...).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}

	deltas := make([]Delta, 0, len(wagers))
	for i := range wagers {
		changeType, oldResult := e.compareWager(&wagers[i], cachedValues[i])
		if changeType != ChangeTypeNone {
			deltas = append(deltas, Delta{
				Wager:      wagers[i],
				ChangeType: changeType,
				OldResult:  oldResult,
			})
		}
	}

	return deltas, nil
}

// UpdateCache records wagers after a successful write (write-through)
func (e *Engine) UpdateCache(ctx context.Context, wagers []models.Wager) error {
	if len(wagers) == 0 {
		return nil
	}

	pipe := e.redis.Pipeline()
	for i := range wagers {
		w := &wagers[i]
		cached := CachedWager{
			Result: w.Result,
			Payout: w.Payout,
			SeenAt: time.Now().UTC(),
		}

		data, err := json.Marshal(cached)
		if err != nil {
			return fmt.Errorf("marshal cached wager: %w", err)
		}
		pipe.Set(ctx, e.buildKey(w), data, e.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis pipeline exec: %w", err)
	}
	return nil
}

// buildKey creates the Redis key for a wager.
// Format: wagers:seen:{book_key}:{reference_id}
func (e *Engine) buildKey(w *models.Wager) string {
	return fmt.Sprintf("wagers:seen:%s:%s", w.BookKey, w.ReferenceID)
}

// compareWager compares an extracted wager against its cached value
func (e *Engine) compareWager(w *models.Wager, cachedValue interface{}) (ChangeType, models.BetResult) {
	if cachedValue == nil {
		return ChangeTypeNew, ""
	}

	cachedStr, ok := cachedValue.(string)
	if !ok {
		// Cache corruption, treat as new
		return ChangeTypeNew, ""
	}

	var cached CachedWager
	if err := json.Unmarshal([]byte(cachedStr), &cached); err != nil {
		return ChangeTypeNew, ""
	}

	if w.Result != cached.Result || payoutChanged(w.Payout, cached.Payout) {
		return ChangeTypeSettled, cached.Result
	}

	return ChangeTypeNone, cached.Result
}

// payoutChanged checks if payout values differ
func payoutChanged(a, b *float64) bool {
	if a == nil && b == nil {
		return false
	}
	if a == nil || b == nil {
		return true
	}

	const epsilon = 0.001
	diff := *a - *b
	if diff < 0 {
		diff = -diff
	}
	return diff > epsilon
}

// Package store lands extracted wagers in the Alexandria DB and keeps stored
// classifications inside the closed category enumeration.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/XavierBriggs/Scribe/pkg/models"
)

const (
	defaultBatchSize     = 50
	defaultFlushInterval = 5 * time.Second
	importStream         = "wagers.imported"
)

// Writer batches Alexandria DB writes and publishes imported wagers to a
// Redis Stream for downstream consumers (aggregation, alerting).
type Writer struct {
	db    *sql.DB
	redis *redis.Client
	runID string

	batchSize     int
	flushInterval time.Duration

	buffer []models.Wager
	mu     sync.Mutex

	flushTicker *time.Ticker
	stopChan    chan struct{}
	wg          sync.WaitGroup
}

// StreamMessage represents a message published to the import stream
type StreamMessage struct {
	ReferenceID string                `json:"reference_id"`
	BookKey     string                `json:"book_key"`
	League      string                `json:"league"`
	BetType     models.BetType        `json:"bet_type"`
	Category    models.MarketCategory `json:"category"`
	Result      models.BetResult      `json:"result"`
	ImportRunID string                `json:"import_run_id"`
	ImportedAt  time.Time             `json:"imported_at"`
}

// NewWriter creates a new batching writer. runID tags every write with the
// import run that produced it.
func NewWriter(db *sql.DB, redisClient *redis.Client, runID string) *Writer {
	return &Writer{
		db:            db,
		redis:         redisClient,
		runID:         runID,
		batchSize:     defaultBatchSize,
		flushInterval: defaultFlushInterval,
		buffer:        make([]models.Wager, 0, defaultBatchSize),
		stopChan:      make(chan struct{}),
	}
}

// Start begins the background flush ticker
func (w *Writer) Start(ctx context.Context) {
	w.flushTicker = time.NewTicker(w.flushInterval)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-w.flushTicker.C:
				if err := w.Flush(ctx); err != nil {
					fmt.Printf("flush error: %v\n", err)
				}
			case <-w.stopChan:
				w.flushTicker.Stop()
				// Final flush on shutdown
				_ = w.Flush(ctx)
				return
			case <-ctx.Done():
				w.flushTicker.Stop()
				return
			}
		}
	}()
}

// Stop flushes and stops the background ticker
func (w *Writer) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}

// Write buffers wagers, flushing when the batch size is reached
func (w *Writer) Write(ctx context.Context, wagers []models.Wager) error {
	w.mu.Lock()
	w.buffer = append(w.buffer, wagers...)
	shouldFlush := len(w.buffer) >= w.batchSize
	w.mu.Unlock()

	if shouldFlush {
		return w.Flush(ctx)
	}
	return nil
}

// Flush writes the buffered wagers to Alexandria in one transaction and
// publishes them to the import stream
func (w *Writer) Flush(ctx context.Context) error {
	w.mu.Lock()
	if len(w.buffer) == 0 {
		w.mu.Unlock()
		return nil
	}
	batch := w.buffer
	w.buffer = make([]models.Wager, 0, w.batchSize)
	w.mu.Unlock()

	if err := w.insertBatch(ctx, batch); err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}

	if w.redis != nil {
		if err := w.publishBatch(ctx, batch); err != nil {
			// The wagers are committed; stream delivery is best effort
			fmt.Printf("[Store] warning: failed to publish import stream: %v\n", err)
		}
	}

	return nil
}

// insertBatch upserts a batch of wagers keyed by (book_key, reference_id).
// Re-importing an overlapping history page updates settlement fields in
// place instead of duplicating the slip.
func (w *Writer) insertBatch(ctx context.Context, batch []models.Wager) error {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO wagers (
			book_key, reference_id, placed_at, placed_at_raw, bet_type,
			league, description, odds, stake, payout, result,
			category, type, entity_name, legs, raw_excerpt,
			import_run_id, imported_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW())
		ON CONFLICT (book_key, reference_id) DO UPDATE SET
			payout = EXCLUDED.payout,
			result = EXCLUDED.result,
			category = EXCLUDED.category,
			type = EXCLUDED.type,
			legs = EXCLUDED.legs,
			import_run_id = EXCLUDED.import_run_id,
			imported_at = NOW()
	`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for i := range batch {
		wg := &batch[i]

		legsJSON, err := json.Marshal(wg.Legs)
		if err != nil {
			return fmt.Errorf("marshal legs for %s: %w", wg.ReferenceID, err)
		}

		var placedAt interface{}
		if !wg.PlacedAt.IsZero() {
			placedAt = wg.PlacedAt
		}

		_, err = stmt.ExecContext(ctx,
			wg.BookKey, wg.ReferenceID, placedAt, wg.PlacedAtRaw, string(wg.BetType),
			wg.League, wg.Description, wg.Odds, wg.Stake, wg.Payout, string(wg.Result),
			string(wg.Category), wg.Type, wg.EntityName, legsJSON, wg.RawExcerpt,
			w.runID,
		)
		if err != nil {
			return fmt.Errorf("upsert wager %s: %w", wg.ReferenceID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// publishBatch publishes each wager to the import stream
func (w *Writer) publishBatch(ctx context.Context, batch []models.Wager) error {
	pipe := w.redis.Pipeline()

	for i := range batch {
		wg := &batch[i]
		msg := StreamMessage{
			ReferenceID: wg.ReferenceID,
			BookKey:     wg.BookKey,
			League:      wg.League,
			BetType:     wg.BetType,
			Category:    wg.Category,
			Result:      wg.Result,
			ImportRunID: w.runID,
			ImportedAt:  time.Now().UTC(),
		}

		data, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("marshal stream message: %w", err)
		}

		pipe.XAdd(ctx, &redis.XAddArgs{
			Stream: importStream,
			Values: map[string]interface{}{"wager": data},
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("xadd pipeline exec: %w", err)
	}
	return nil
}

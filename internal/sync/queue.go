package sync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/timeworthapp/timeworth/internal/model"
)

// ToRecord converts a wire row back into a record.
func (r Row) ToRecord() (model.Record, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return model.Record{}, fmt.Errorf("sync: parsing row id %q: %w", r.ID, err)
	}
	kind, err := model.ParseKind(r.Kind)
	if err != nil {
		return model.Record{}, fmt.Errorf("sync: row %s: %w", r.ID, err)
	}
	ts, err := time.Parse(time.RFC3339Nano, r.Timestamp)
	if err != nil {
		return model.Record{}, fmt.Errorf("sync: parsing row timestamp %q: %w", r.Timestamp, err)
	}

	rec := model.Record{
		ID:            id,
		Kind:          kind,
		Amount:        r.Amount,
		Recurring:     r.Recurring,
		TimeCostHours: r.TimeCostHours,
		Timestamp:     ts,
		Category:      r.Category,
		Note:          r.Note,
	}
	if r.EndedAt != "" {
		rec.EndedAt, _ = time.Parse(time.RFC3339, r.EndedAt)
	}
	return rec, nil
}

// Queue batches pending rows and flushes them in one push, either on a
// timer or on an explicit Flush. It is safe for concurrent use.
type Queue struct {
	client *Client

	mu      sync.Mutex
	pending []Row
}

// NewQueue creates a queue pushing through the given client.
func NewQueue(client *Client) *Queue {
	return &Queue{client: client}
}

// Add enqueues a row for the next flush.
func (q *Queue) Add(row Row) {
	q.mu.Lock()
	q.pending = append(q.pending, row)
	q.mu.Unlock()
}

// Len returns the number of rows waiting to be flushed.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush pushes all pending rows. On failure the rows stay queued for the
// next attempt.
func (q *Queue) Flush(ctx context.Context) error {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	if err := q.client.Push(ctx, batch); err != nil {
		q.mu.Lock()
		q.pending = append(batch, q.pending...)
		q.mu.Unlock()
		return err
	}
	return nil
}

// Run flushes on the given interval until the context is cancelled,
// then performs one final flush. Flush errors are reported through
// onError and do not stop the loop.
func (q *Queue) Run(ctx context.Context, interval time.Duration, onError func(error)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := q.Flush(ctx); err != nil && onError != nil {
				onError(err)
			}
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			if err := q.Flush(flushCtx); err != nil && onError != nil {
				onError(err)
			}
			cancel()
			return
		}
	}
}

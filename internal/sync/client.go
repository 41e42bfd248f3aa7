// Package sync provides the client for the optional remote sheet-style
// endpoint. Failures here are soft: the caller logs and carries on with
// local state, and the projection engine never sees them.
package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/timeworthapp/timeworth/internal/model"
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 4 << 20 // 4 MB
)

var (
	// ErrUnauthorized indicates the sync token is missing or rejected.
	ErrUnauthorized = errors.New("sync: unauthorized (check sync token)")
	// ErrRateLimited indicates the endpoint throttled the request.
	ErrRateLimited = errors.New("sync: rate limited")
	// ErrNoEndpoint indicates sync has not been configured.
	ErrNoEndpoint = errors.New("sync: no endpoint configured")
)

// Row is the flat wire shape of one record on the remote sheet.
type Row struct {
	ID            string  `json:"id"`
	Kind          string  `json:"kind"`
	Amount        float64 `json:"amount"`
	Recurring     bool    `json:"recurring"`
	TimeCostHours float64 `json:"time_cost_hours"`
	Timestamp     string  `json:"timestamp"`
	Category      string  `json:"category,omitempty"`
	Note          string  `json:"note,omitempty"`
	EndedAt       string  `json:"ended_at,omitempty"`
}

// RowFromRecord flattens a record for the wire.
func RowFromRecord(r model.Record) Row {
	row := Row{
		ID:            r.ID.String(),
		Kind:          string(r.Kind),
		Amount:        r.Amount,
		Recurring:     r.Recurring,
		TimeCostHours: r.TimeCostHours,
		Timestamp:     r.Timestamp.UTC().Format(time.RFC3339Nano),
		Category:      r.Category,
		Note:          r.Note,
	}
	if !r.EndedAt.IsZero() {
		row.EndedAt = r.EndedAt.UTC().Format(time.RFC3339)
	}
	return row
}

// Backoff is the retry schedule for transient sync failures.
type Backoff struct {
	Initial     time.Duration
	Multiplier  float64
	Max         time.Duration
	MaxAttempts int
}

// DefaultBackoff matches the default config: 500ms doubling to a 30s
// cap, five attempts.
var DefaultBackoff = Backoff{
	Initial:     500 * time.Millisecond,
	Multiplier:  2,
	Max:         30 * time.Second,
	MaxAttempts: 5,
}

// Delay returns the wait before the given retry attempt (0-based).
func (b Backoff) Delay(attempt int) time.Duration {
	d := float64(b.Initial)
	for i := 0; i < attempt; i++ {
		d *= b.Multiplier
	}
	if limit := float64(b.Max); d > limit {
		d = limit
	}
	return time.Duration(d)
}

// Client talks to the remote sheet endpoint.
type Client struct {
	endpoint string
	token    string
	backoff  Backoff
	http     *http.Client
}

// NewClient creates a sync client. Returns nil when no endpoint is
// configured; callers treat a nil client as "sync disabled".
func NewClient(endpoint, token string, backoff Backoff) *Client {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return nil
	}
	if backoff.MaxAttempts < 1 {
		backoff = DefaultBackoff
	}
	return &Client{
		endpoint: endpoint,
		token:    token,
		backoff:  backoff,
		http:     &http.Client{},
	}
}

// Pull fetches all remote rows.
func (c *Client) Pull(ctx context.Context) ([]Row, error) {
	body, err := c.doWithRetry(ctx, http.MethodGet, "/rows", nil)
	if err != nil {
		return nil, err
	}

	var rows []Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("sync: parsing rows: %w", err)
	}
	return rows, nil
}

// Push uploads rows to the remote sheet. Pushing nothing is a no-op.
func (c *Client) Push(ctx context.Context, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("sync: encoding rows: %w", err)
	}
	_, err = c.doWithRetry(ctx, http.MethodPost, "/rows", payload)
	return err
}

// doWithRetry performs a request, retrying transient failures per the
// backoff schedule. Authorization failures are terminal.
func (c *Client) doWithRetry(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < c.backoff.MaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(c.backoff.Delay(attempt - 1)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		body, err := c.do(ctx, method, path, payload)
		if err == nil {
			return body, nil
		}
		if errors.Is(err, ErrUnauthorized) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("sync: giving up after %d attempts: %w", c.backoff.MaxAttempts, lastErr)
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("sync: creating request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", "github.com/timeworthapp/timeworth/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sync: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("sync: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("sync: reading response: %w", err)
	}
	return body, nil
}

// Package store provides the SQLite-backed local persistence layer:
// a string key/value table for the profile and cached derived values,
// and a records table for the financial ledger.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/timeworthapp/timeworth/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Well-known kv keys.
const (
	KeyProfile         = "profile"
	KeyTrajectoryStart = "trajectory_start_date"
	KeyLastSyncedAt    = "last_synced_at"
)

// ErrNoProfile is returned when no profile has been saved yet.
var ErrNoProfile = errors.New("no profile configured")

// Store wraps the local database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the raw value stored under key, and whether it exists.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous value.
func (s *Store) Put(key, value string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)", key, value)
	return err
}

// Delete removes a key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}

// LoadProfile reads the saved profile, or ErrNoProfile.
func (s *Store) LoadProfile() (model.Profile, error) {
	raw, ok, err := s.Get(KeyProfile)
	if err != nil {
		return model.Profile{}, err
	}
	if !ok {
		return model.Profile{}, ErrNoProfile
	}

	var p model.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return model.Profile{}, fmt.Errorf("parsing profile: %w", err)
	}
	return p, nil
}

// SaveProfile persists the profile as JSON under the profile key.
func (s *Store) SaveProfile(p model.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	return s.Put(KeyProfile, string(raw))
}

// TrajectoryStart returns the cached trajectory start date, if any.
func (s *Store) TrajectoryStart() (time.Time, bool, error) {
	raw, ok, err := s.Get(KeyTrajectoryStart)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parsing trajectory start: %w", err)
	}
	return t, true, nil
}

// SetTrajectoryStart caches the canonical trajectory start date. Written
// once; later recomputation would retroactively change deviation.
func (s *Store) SetTrajectoryStart(t time.Time) error {
	return s.Put(KeyTrajectoryStart, t.UTC().Format(time.RFC3339))
}

// InsertRecord stores a record.
func (s *Store) InsertRecord(r model.Record) error {
	recurring := 0
	if r.Recurring {
		recurring = 1
	}
	endedAt := ""
	if !r.EndedAt.IsZero() {
		endedAt = r.EndedAt.UTC().Format(time.RFC3339)
	}

	_, err := s.db.Exec(`INSERT OR REPLACE INTO records
		(id, kind, amount, recurring, time_cost_hours, timestamp, category, note, ended_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(), string(r.Kind), r.Amount, recurring, r.TimeCostHours,
		r.Timestamp.UTC().Format(time.RFC3339Nano), r.Category, r.Note, endedAt,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

// ListRecords returns all records ordered by timestamp ascending.
func (s *Store) ListRecords() ([]model.Record, error) {
	return s.queryRecords(`SELECT
		id, kind, amount, recurring, time_cost_hours, timestamp, category, note, ended_at
		FROM records ORDER BY timestamp ASC`)
}

// RecordsInMonth returns the records falling in t's calendar month, in
// t's location. Matching happens in Go: stored timestamps are UTC while
// month boundaries are local, so a SQL range scan would mis-bucket
// records near midnight.
func (s *Store) RecordsInMonth(t time.Time) ([]model.Record, error) {
	all, err := s.ListRecords()
	if err != nil {
		return nil, err
	}
	var out []model.Record
	for _, r := range all {
		if r.SameMonth(t) {
			out = append(out, r)
		}
	}
	return out, nil
}

// ChangedSince returns records updated after the given watermark, for
// incremental sync pushes.
func (s *Store) ChangedSince(watermark time.Time) ([]model.Record, error) {
	return s.queryRecords(`SELECT
		id, kind, amount, recurring, time_cost_hours, timestamp, category, note, ended_at
		FROM records WHERE updated_at > ? ORDER BY timestamp ASC`,
		watermark.UTC().Format(time.RFC3339Nano))
}

func (s *Store) queryRecords(query string, args ...any) ([]model.Record, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []model.Record
	for rows.Next() {
		var r model.Record
		var id, kind, ts string
		var recurring int
		var category, note, endedAt sql.NullString

		err := rows.Scan(&id, &kind, &r.Amount, &recurring, &r.TimeCostHours,
			&ts, &category, &note, &endedAt)
		if err != nil {
			return nil, err
		}

		r.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parsing record id %q: %w", id, err)
		}
		r.Kind = model.RecordKind(kind)
		r.Recurring = recurring != 0
		r.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing record timestamp %q: %w", ts, err)
		}
		if category.Valid {
			r.Category = category.String
		}
		if note.Valid {
			r.Note = note.String
		}
		if endedAt.Valid && endedAt.String != "" {
			r.EndedAt, _ = time.Parse(time.RFC3339, endedAt.String)
		}

		records = append(records, r)
	}
	return records, rows.Err()
}

// DeleteRecord removes a record by id.
func (s *Store) DeleteRecord(id uuid.UUID) error {
	_, err := s.db.Exec("DELETE FROM records WHERE id = ?", id.String())
	return err
}

// EndRecurring marks a recurring record's subscription as ended at the
// given time.
func (s *Store) EndRecurring(id uuid.UUID, at time.Time) error {
	res, err := s.db.Exec(`UPDATE records SET ended_at = ?, updated_at = ?
		WHERE id = ? AND recurring = 1`,
		at.UTC().Format(time.RFC3339), time.Now().UTC().Format(time.RFC3339Nano), id.String())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no recurring record with id %s", id)
	}
	return nil
}

// RecordCount returns the number of stored records.
func (s *Store) RecordCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&count)
	return count, err
}

// LastSyncedAt returns the sync watermark, zero if never synced.
func (s *Store) LastSyncedAt() (time.Time, error) {
	raw, ok, err := s.Get(KeyLastSyncedAt)
	if err != nil || !ok {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing sync watermark: %w", err)
	}
	return t, nil
}

// SetLastSyncedAt advances the sync watermark.
func (s *Store) SetLastSyncedAt(t time.Time) error {
	return s.Put(KeyLastSyncedAt, t.UTC().Format(time.RFC3339Nano))
}

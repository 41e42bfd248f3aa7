package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// RecordKind tags a financial record as a saving or a spending.
type RecordKind string

const (
	KindSave  RecordKind = "save"
	KindSpend RecordKind = "spend"
)

// ErrInvalidKind is returned when a record kind is neither save nor spend.
var ErrInvalidKind = errors.New("record kind must be save or spend")

// ParseKind converts user input into a RecordKind.
func ParseKind(s string) (RecordKind, error) {
	switch RecordKind(s) {
	case KindSave:
		return KindSave, nil
	case KindSpend:
		return KindSpend, nil
	default:
		return "", ErrInvalidKind
	}
}

// Record is a single tracked saving or spending.
//
// TimeCostHours is frozen at creation time using the salary and rates in
// effect then. It is never recomputed on read, so past GPS snapshots stay
// stable when the profile changes.
type Record struct {
	ID        uuid.UUID  `json:"id"`
	Kind      RecordKind `json:"kind"`
	Amount    float64    `json:"amount"`
	Recurring bool       `json:"recurring"`

	TimeCostHours float64 `json:"time_cost_hours"`

	Timestamp time.Time `json:"timestamp"`
	Category  string    `json:"category,omitempty"`
	Note      string    `json:"note,omitempty"`

	// EndedAt is set when a recurring record's subscription ends.
	EndedAt time.Time `json:"ended_at,omitzero"`
}

// NewRecord creates a record with a fresh ID, stamped now.
func NewRecord(kind RecordKind, amount float64, recurring bool, timeCostHours float64) Record {
	return Record{
		ID:            uuid.New(),
		Kind:          kind,
		Amount:        amount,
		Recurring:     recurring,
		TimeCostHours: timeCostHours,
		Timestamp:     time.Now().UTC(),
	}
}

// Date returns the record's calendar date in the given location,
// truncated to midnight. Used for day-level grouping.
func (r Record) Date(loc *time.Location) time.Time {
	t := r.Timestamp.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// SameMonth reports whether the record falls in the same calendar
// month as t, in t's location.
func (r Record) SameMonth(t time.Time) bool {
	rt := r.Timestamp.In(t.Location())
	return rt.Year() == t.Year() && rt.Month() == t.Month()
}

package gps

import (
	"testing"
	"time"

	"github.com/timeworthapp/timeworth/internal/model"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func recordAt(ts time.Time) model.Record {
	return model.Record{Kind: model.KindSpend, Amount: 100, Timestamp: ts}
}

func TestStartDate_NoRecordsUsesCreatedAt(t *testing.T) {
	created := date(t, "2026-01-01")
	now := date(t, "2026-03-01")
	got := StartDate(model.Profile{CreatedAt: created}, nil, now)
	if !got.Equal(created) {
		t.Fatalf("StartDate = %v, want %v", got, created)
	}
}

func TestStartDate_LegacyProfileUsesNow(t *testing.T) {
	now := date(t, "2026-03-01")
	got := StartDate(model.Profile{}, []model.Record{recordAt(date(t, "2026-01-20"))}, now)
	if !got.Equal(now) {
		t.Fatalf("StartDate for legacy profile = %v, want now %v", got, now)
	}
}

func TestStartDate_PromptTrackingKeepsCreatedAt(t *testing.T) {
	created := date(t, "2026-01-01")
	records := []model.Record{recordAt(date(t, "2026-01-05"))}
	got := StartDate(model.Profile{CreatedAt: created}, records, date(t, "2026-02-01"))
	if !got.Equal(created) {
		t.Fatalf("StartDate = %v, want createdAt %v", got, created)
	}
}

func TestStartDate_DelayedTrackingBackdatesGraceWindow(t *testing.T) {
	created := date(t, "2026-01-01")
	records := []model.Record{
		recordAt(date(t, "2026-02-10")),
		recordAt(date(t, "2026-01-20")), // earliest
		recordAt(date(t, "2026-03-01")),
	}
	got := StartDate(model.Profile{CreatedAt: created}, records, date(t, "2026-03-15"))
	want := date(t, "2026-01-13") // earliest minus 7 days
	if !got.Equal(want) {
		t.Fatalf("StartDate = %v, want %v", got, want)
	}
}

func TestStartDate_ExactlySevenDaysIsPrompt(t *testing.T) {
	created := date(t, "2026-01-01")
	records := []model.Record{recordAt(date(t, "2026-01-08"))}
	got := StartDate(model.Profile{CreatedAt: created}, records, date(t, "2026-02-01"))
	if !got.Equal(created) {
		t.Fatalf("StartDate at window edge = %v, want createdAt %v", got, created)
	}
}

func TestMonthsElapsed(t *testing.T) {
	cases := []struct {
		start, now string
		want       int
	}{
		{"2026-01-15", "2026-01-20", 0},
		{"2026-01-15", "2026-02-14", 0},
		{"2026-01-15", "2026-02-15", 1},
		{"2026-01-15", "2026-07-20", 6},
		{"2025-11-01", "2026-02-01", 3},
		{"2026-05-01", "2026-01-01", 0}, // now before start
	}
	for _, c := range cases {
		got := MonthsElapsed(date(t, c.start), date(t, c.now))
		if got != c.want {
			t.Errorf("MonthsElapsed(%s, %s) = %d, want %d", c.start, c.now, got, c.want)
		}
	}
}

package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/timeworthapp/timeworth/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "timeworth.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestKVRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if _, ok, err := s.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent", ok, err)
	}

	if err := s.Put("k", "v1"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put("k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, ok, err := s.Get("k")
	if err != nil || !ok || got != "v2" {
		t.Fatalf("Get(k) = %q ok=%v err=%v, want v2", got, ok, err)
	}

	if err := s.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Fatal("key still present after delete")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.LoadProfile(); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("LoadProfile on empty store: %v, want ErrNoProfile", err)
	}

	p := model.Profile{
		Age:                  30,
		MonthlySalary:        50_000,
		TargetRetireAge:      65,
		CurrentSavings:       120_000,
		MonthlySavings:       10_000,
		InflationRatePercent: 2.5,
		ROIRatePercent:       6,
		CreatedAt:            time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := s.SaveProfile(p); err != nil {
		t.Fatalf("save profile: %v", err)
	}

	got, err := s.LoadProfile()
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if got != p {
		t.Fatalf("profile round-trip = %+v, want %+v", got, p)
	}
}

func TestRecordsRoundTrip(t *testing.T) {
	s := openTestStore(t)

	first := model.NewRecord(model.KindSpend, 1_200, false, 7.5)
	first.Category = "dining"
	second := model.NewRecord(model.KindSave, 10_000, false, 64)
	second.Timestamp = first.Timestamp.Add(time.Hour)

	for _, r := range []model.Record{second, first} {
		if err := s.InsertRecord(r); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	records, err := s.ListRecords()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Ordered by timestamp, not insert order.
	if records[0].ID != first.ID || records[1].ID != second.ID {
		t.Fatalf("records out of order: %v then %v", records[0].ID, records[1].ID)
	}
	if records[0].Category != "dining" || records[0].TimeCostHours != 7.5 {
		t.Fatalf("record fields lost: %+v", records[0])
	}

	if err := s.DeleteRecord(first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	n, err := s.RecordCount()
	if err != nil || n != 1 {
		t.Fatalf("count after delete = %d err=%v, want 1", n, err)
	}
}

func TestRecordsInMonth(t *testing.T) {
	s := openTestStore(t)

	loc := time.FixedZone("UTC+8", 8*3600)
	january := model.NewRecord(model.KindSpend, 300, false, 1.8)
	january.Timestamp = time.Date(2026, 1, 15, 12, 0, 0, 0, loc)
	// Jan 1 07:00 local is still December in UTC; month bucketing must
	// follow the query's location, not the stored UTC value.
	earlyJanuary := model.NewRecord(model.KindSave, 2_000, false, 12)
	earlyJanuary.Timestamp = time.Date(2026, 1, 1, 7, 0, 0, 0, loc)
	february := model.NewRecord(model.KindSpend, 100, false, 0.6)
	february.Timestamp = time.Date(2026, 2, 2, 9, 0, 0, 0, loc)

	for _, r := range []model.Record{january, earlyJanuary, february} {
		if err := s.InsertRecord(r); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	got, err := s.RecordsInMonth(time.Date(2026, 1, 10, 0, 0, 0, 0, loc))
	if err != nil {
		t.Fatalf("records in month: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records in January, want 2", len(got))
	}
	if got[0].ID != earlyJanuary.ID || got[1].ID != january.ID {
		t.Fatalf("wrong records bucketed: %v, %v", got[0].ID, got[1].ID)
	}
}

func TestEndRecurring(t *testing.T) {
	s := openTestStore(t)

	sub := model.NewRecord(model.KindSpend, 499, true, 3.2)
	if err := s.InsertRecord(sub); err != nil {
		t.Fatalf("insert: %v", err)
	}
	oneOff := model.NewRecord(model.KindSpend, 100, false, 0.6)
	if err := s.InsertRecord(oneOff); err != nil {
		t.Fatalf("insert: %v", err)
	}

	endAt := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if err := s.EndRecurring(sub.ID, endAt); err != nil {
		t.Fatalf("end recurring: %v", err)
	}
	if err := s.EndRecurring(oneOff.ID, endAt); err == nil {
		t.Fatal("ending a non-recurring record should fail")
	}

	records, err := s.ListRecords()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, r := range records {
		if r.ID == sub.ID && !r.EndedAt.Equal(endAt) {
			t.Fatalf("ended_at = %v, want %v", r.EndedAt, endAt)
		}
	}
}

func TestTrajectoryStartCache(t *testing.T) {
	s := openTestStore(t)

	if _, ok, err := s.TrajectoryStart(); err != nil || ok {
		t.Fatalf("TrajectoryStart on empty store = ok=%v err=%v", ok, err)
	}

	start := time.Date(2026, 1, 13, 0, 0, 0, 0, time.UTC)
	if err := s.SetTrajectoryStart(start); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := s.TrajectoryStart()
	if err != nil || !ok || !got.Equal(start) {
		t.Fatalf("TrajectoryStart = %v ok=%v err=%v, want %v", got, ok, err, start)
	}
}

func TestChangedSince(t *testing.T) {
	s := openTestStore(t)

	old := model.NewRecord(model.KindSave, 500, false, 3)
	if err := s.InsertRecord(old); err != nil {
		t.Fatalf("insert: %v", err)
	}

	watermark := time.Now().Add(time.Second)
	changed, err := s.ChangedSince(watermark)
	if err != nil {
		t.Fatalf("changed since: %v", err)
	}
	if len(changed) != 0 {
		t.Fatalf("got %d changed records, want 0", len(changed))
	}

	recent := model.NewRecord(model.KindSpend, 50, false, 0.3)
	recent.Timestamp = time.Now().Add(2 * time.Second)
	// Simulate a write after the watermark.
	time.Sleep(1100 * time.Millisecond)
	if err := s.InsertRecord(recent); err != nil {
		t.Fatalf("insert: %v", err)
	}

	changed, err = s.ChangedSince(watermark)
	if err != nil {
		t.Fatalf("changed since: %v", err)
	}
	if len(changed) != 1 || changed[0].ID != recent.ID {
		t.Fatalf("changed = %v, want just the recent record", changed)
	}
}

// Package gps projects the retirement trajectory from a profile and its
// records: the canonical trajectory start date, the estimated retirement
// age with its ahead/on-track/behind classification, and the current
// month's budget comparison. All functions are pure; "now" is always an
// explicit parameter.
package gps

import (
	"time"

	"github.com/timeworthapp/timeworth/internal/model"
)

// GraceWindow is how much delay between profile creation and the first
// record is forgiven before the start date is backdated from first
// activity instead.
const GraceWindow = 7 * 24 * time.Hour

// StartDate determines the canonical date from which elapsed trajectory
// time is measured.
//
// With no records the profile creation date is used. When the earliest
// record lands within the grace window after creation, creation stands.
// When the user delayed tracking past the window, the start becomes the
// earliest record minus the window, so the signup-to-first-use gap is not
// held against them. A profile without a creation date gets now.
//
// Callers persist the result (Profile.TrajectoryStartDate) and must not
// recompute it: a shifted start date rewrites historical deviation.
func StartDate(profile model.Profile, records []model.Record, now time.Time) time.Time {
	if profile.CreatedAt.IsZero() {
		return now
	}
	if len(records) == 0 {
		return profile.CreatedAt
	}

	earliest := records[0].Timestamp
	for _, r := range records[1:] {
		if r.Timestamp.Before(earliest) {
			earliest = r.Timestamp
		}
	}

	if earliest.Sub(profile.CreatedAt) <= GraceWindow {
		return profile.CreatedAt
	}
	return earliest.Add(-GraceWindow)
}

// MonthsElapsed counts whole calendar months between the trajectory start
// and now. Never negative.
func MonthsElapsed(start, now time.Time) int {
	if start.IsZero() || now.Before(start) {
		return 0
	}
	months := (now.Year()-start.Year())*12 + int(now.Month()) - int(start.Month())
	if now.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

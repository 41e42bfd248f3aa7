// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/timeworthapp/timeworth/internal/finance"
)

// FormatCurrency abbreviates an amount with the 萬/億 units used for
// display: hundred-millions as "X.XX億", ten-thousands as "X萬" with the
// decimal trimmed when exact ("3萬", "3.5萬"), and smaller amounts with
// plain thousand separators.
func FormatCurrency(amount float64) string {
	if amount < 0 {
		return "-" + FormatCurrency(-amount)
	}

	switch {
	case amount >= 100_000_000:
		return fmt.Sprintf("%.2f億", amount/100_000_000)
	case amount >= 10_000:
		tenThousands := math.Round(amount/10_000*10) / 10
		if tenThousands == math.Trunc(tenThousands) {
			return fmt.Sprintf("%.0f萬", tenThousands)
		}
		return fmt.Sprintf("%.1f萬", tenThousands)
	default:
		return FormatNumber(int64(math.Round(amount)))
	}
}

// AgeDiff is a year difference expressed in its largest sensible unit.
type AgeDiff struct {
	Value float64
	Unit  string
}

// FormatAgeDiff converts a year difference into days (under 30), months
// (under a year, nearest month), or years (one decimal). The sign is
// dropped; callers word the direction from the original value. The day
// count is the simplified diffYears*365, not calendar-aware.
func FormatAgeDiff(diffYears float64) AgeDiff {
	days := math.Abs(diffYears) * 365
	switch {
	case days < 30:
		return AgeDiff{Value: math.Round(days), Unit: "days"}
	case days < 365:
		return AgeDiff{Value: math.Round(days / 30), Unit: "months"}
	default:
		return AgeDiff{Value: math.Round(days/365*10) / 10, Unit: "years"}
	}
}

// FormatAgeDiffString renders an AgeDiff as e.g. "3 months" or "1 day".
func FormatAgeDiffString(diffYears float64) string {
	d := FormatAgeDiff(diffYears)
	unit := d.Unit
	if d.Value == 1 {
		unit = strings.TrimSuffix(unit, "s")
	}
	if d.Unit == "years" {
		return fmt.Sprintf("%.1f %s", d.Value, unit)
	}
	return fmt.Sprintf("%.0f %s", d.Value, unit)
}

// FormatTimeCost renders a work-hour amount as e.g. "4.5 days".
func FormatTimeCost(hours float64) string {
	ht := finance.FormatTime(hours)
	switch ht.Unit {
	case finance.UnitMinutes:
		return fmt.Sprintf("%.0f %s", ht.Value, ht.Unit)
	case finance.UnitYears:
		return fmt.Sprintf("%.2f %s", ht.Value, ht.Unit)
	default:
		return fmt.Sprintf("%.1f %s", ht.Value, ht.Unit)
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

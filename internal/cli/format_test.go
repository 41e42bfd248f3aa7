package cli

import "testing"

func TestFormatCurrency_Tiers(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{150_000_000, "1.50億"},
		{100_000_000, "1.00億"},
		{234_500_000, "2.35億"},
		{30_000, "3萬"},   // exact, decimal trimmed
		{35_000, "3.5萬"},
		{10_000, "1萬"},
		{123_456, "12.3萬"},
		{99_999_999, "10000萬"}, // rounds to an exact ten-thousand
		{9_999, "9,999"},
		{1_234, "1,234"},
		{999, "999"},
		{0, "0"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.amount); got != c.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", c.amount, got, c.want)
		}
	}
}

func TestFormatCurrency_Negative(t *testing.T) {
	if got := FormatCurrency(-35_000); got != "-3.5萬" {
		t.Fatalf("FormatCurrency(-35000) = %q, want -3.5萬", got)
	}
}

func TestFormatAgeDiff_Units(t *testing.T) {
	cases := []struct {
		diffYears float64
		wantValue float64
		wantUnit  string
	}{
		{0.01, 4, "days"},       // 3.65 days
		{0.05, 18, "days"},      // 18.25 days
		{0.1, 1, "months"},      // 36.5 days
		{0.5, 6, "months"},      // 182.5 days
		{1, 1.0, "years"},
		{2.34, 2.3, "years"},
		{-0.5, 6, "months"},     // sign dropped
	}
	for _, c := range cases {
		got := FormatAgeDiff(c.diffYears)
		if got.Value != c.wantValue || got.Unit != c.wantUnit {
			t.Errorf("FormatAgeDiff(%v) = %+v, want %v %s", c.diffYears, got, c.wantValue, c.wantUnit)
		}
	}
}

func TestFormatAgeDiffString_Singular(t *testing.T) {
	if got := FormatAgeDiffString(0.1); got != "1 month" {
		t.Fatalf("FormatAgeDiffString(0.1) = %q, want \"1 month\"", got)
	}
}

func TestFormatTimeCost(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{0.5, "30 minutes"},
		{4, "4.0 hours"},
		{40, "5.0 days"},
		{528, "3.0 months"},
		{2112, "1.00 years"},
	}
	for _, c := range cases {
		if got := FormatTimeCost(c.hours); got != c.want {
			t.Errorf("FormatTimeCost(%v) = %q, want %q", c.hours, got, c.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1_000, "1,000"},
		{1_234_567, "1,234,567"},
		{-45_000, "-45,000"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.n); got != c.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

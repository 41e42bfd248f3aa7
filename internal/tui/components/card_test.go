package components

import "testing"

func TestLayoutRow_SumsToTotal(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{100, 3},
		{80, 4},
		{7, 3},
		{1, 2},
	}
	for _, c := range cases {
		widths := LayoutRow(c.total, c.n)
		if len(widths) != c.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", c.total, c.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != c.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", c.total, c.n, sum)
		}
	}
}

func TestLayoutRow_ZeroColumns(t *testing.T) {
	if got := LayoutRow(100, 0); got != nil {
		t.Fatalf("LayoutRow(100, 0) = %v, want nil", got)
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('r'); got != 1 {
		t.Fatalf("TabIdxByKey('r') = %d, want 1", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Fatalf("TabIdxByKey('z') = %d, want -1", got)
	}
}

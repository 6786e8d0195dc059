package thresholds

import "testing"

func TestTablesSnapshot(t *testing.T) {
	sum := func(xs []int32) (s int) {
		for _, x := range xs {
			s += int(x)
		}
		return
	}
	if got := sum(sumOfHeads80[:]); got != 783941 {
		t.Fatalf("0.80 table checksum changed: %d", got)
	}
	if got := sum(sumOfHeads75[:]); got != 534622 {
		t.Fatalf("0.75 table checksum changed: %d", got)
	}
	if len(sumOfHeads75) != MaxPeriod {
		t.Fatalf("table lengths differ: %d vs %d", len(sumOfHeads75), MaxPeriod)
	}
}

func TestSumOfHeadsLookup(t *testing.T) {
	t80, err := ForProbability(0.8)
	if err != nil {
		t.Fatal(err)
	}
	t75, err := ForProbability(0.75)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct{ d, w80, w75 int }{
		{1, 0, 0}, {2, 5, 5}, {10, 5, 5}, {50, 14, 8},
		{100, 38, 26}, {500, 177, 115}, {1000, 386, 262}, {2001, 818, 567},
	}
	for _, c := range cases {
		if got := t80.SumOfHeads(c.d); got != c.w80 {
			t.Fatalf("0.80 d=%d got %d want %d", c.d, got, c.w80)
		}
		if got := t75.SumOfHeads(c.d); got != c.w75 {
			t.Fatalf("0.75 d=%d got %d want %d", c.d, got, c.w75)
		}
	}
	if t80.SumOfHeads(0) < 1<<30 || t80.SumOfHeads(MaxPeriod+1) < 1<<30 {
		t.Fatalf("out-of-range periods must be unreachable")
	}
}

func TestForProbabilityRejectsOthers(t *testing.T) {
	for _, p := range []float64{0, 0.5, 0.9, 1} {
		if _, err := ForProbability(p); err == nil {
			t.Fatalf("p=%v accepted", p)
		}
	}
}

func TestApparentSizeMonotoneAndBounded(t *testing.T) {
	prev := ApparentSize(1)
	for d := 1; d <= MaxPeriod; d++ {
		a := ApparentSize(d)
		if a > d {
			t.Fatalf("ApparentSize(%d)=%d exceeds d", d, a)
		}
		if a < prev {
			t.Fatalf("ApparentSize not monotone at d=%d: %d < %d", d, a, prev)
		}
		prev = a
	}
	if ApparentSize(5) != 4 || ApparentSize(6) != 5 || ApparentSize(11) != 9 || ApparentSize(14) != 12 {
		t.Fatalf("unexpected breakpoints")
	}
}

func TestMaxDelta(t *testing.T) {
	cases := map[int]int{1: 0, 2: 1, 4: 1, 8: 2, 25: 3, 100: 7}
	for d, want := range cases {
		if got := MaxDelta(0.1, d); got != want {
			t.Fatalf("MaxDelta(0.1,%d)=%d want %d", d, got, want)
		}
	}
}

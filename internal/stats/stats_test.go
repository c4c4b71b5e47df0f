package stats

import "testing"

func TestAvgHopsZeroSuccessful(t *testing.T) {
	if got := AvgHops(100, 0); got != 0 {
		t.Errorf("AvgHops(100, 0) = %v, want 0", got)
	}
}

func TestAvgHopsBasic(t *testing.T) {
	if got := AvgHops(40, 10); got != 4 {
		t.Errorf("AvgHops(40, 10) = %v, want 4", got)
	}
}

func TestTheoreticalHopsSmallN(t *testing.T) {
	for _, n := range []int{0, 1} {
		if got := TheoreticalHops(n); got != 0 {
			t.Errorf("TheoreticalHops(%d) = %v, want 0", n, got)
		}
	}
}

func TestTheoreticalHopsKnownValues(t *testing.T) {
	if got := TheoreticalHops(1024); got != 10 {
		t.Errorf("TheoreticalHops(1024) = %v, want 10", got)
	}
}

func TestEstimatorHopsClampsAndCeils(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{1000, 10}, // log2(1000) ~= 9.97 -> ceil 10
		{1024, 10},
	}
	for _, c := range cases {
		if got := EstimatorHops(c.n); got != c.want {
			t.Errorf("EstimatorHops(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestVerdict(t *testing.T) {
	if got := Verdict(5, 0); got != "scales logarithmically" {
		t.Errorf("Verdict(5, 0) = %q, want scales logarithmically", got)
	}
	if got := Verdict(10, 10); got != "scales logarithmically" {
		t.Errorf("Verdict(10, 10) = %q, want scales logarithmically", got)
	}
	if got := Verdict(15, 10); got != "scales logarithmically" {
		t.Errorf("Verdict(15, 10) = %q, want scales logarithmically (within 1.5x)", got)
	}
	if got := Verdict(16, 10); got != "may not be optimal" {
		t.Errorf("Verdict(16, 10) = %q, want may not be optimal", got)
	}
}

package ring

import "testing"

func mustSpace(t *testing.T, bits int) Space {
	t.Helper()
	sp, err := NewSpace(bits)
	if err != nil {
		t.Fatalf("NewSpace(%d) failed: %v", bits, err)
	}
	return sp
}

func TestNewSpaceRejectsBadBits(t *testing.T) {
	if _, err := NewSpace(0); err == nil {
		t.Error("expected error for bits=0")
	}
	if _, err := NewSpace(32); err == nil {
		t.Error("expected error for bits=32")
	}
}

func TestPow2(t *testing.T) {
	sp := mustSpace(t, 16)
	if got := sp.Pow2(0); got != 1 {
		t.Errorf("Pow2(0) = %d, want 1", got)
	}
	if got := sp.Pow2(15); got != 32768 {
		t.Errorf("Pow2(15) = %d, want 32768", got)
	}
}

func TestBetweenLinear(t *testing.T) {
	sp := mustSpace(t, 8)
	// (10, 20]
	cases := []struct {
		v    ID
		want bool
	}{
		{10, false},
		{11, true},
		{20, true},
		{21, false},
	}
	for _, c := range cases {
		if got := sp.Between(c.v, 10, 20); got != c.want {
			t.Errorf("Between(%d, 10, 20) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestBetweenWrap(t *testing.T) {
	sp := mustSpace(t, 8)
	// (250, 5] wraps around 255/0
	cases := []struct {
		v    ID
		want bool
	}{
		{251, true},
		{255, true},
		{0, true},
		{5, true},
		{6, false},
		{250, false},
	}
	for _, c := range cases {
		if got := sp.Between(c.v, 250, 5); got != c.want {
			t.Errorf("Between(%d, 250, 5) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestBetweenWholeRingWhenEqual(t *testing.T) {
	sp := mustSpace(t, 8)
	for _, v := range []ID{0, 42, 255} {
		if !sp.Between(v, 100, 100) {
			t.Errorf("Between(%d, 100, 100) = false, want true (whole ring)", v)
		}
	}
}

func TestBetweenEquivalence(t *testing.T) {
	// in_range(v,s,e) == in_range_exclusive(v,s,e) || v == e
	sp := mustSpace(t, 6)
	for s := ID(0); s < sp.Size; s++ {
		for e := ID(0); e < sp.Size; e++ {
			for v := ID(0); v < sp.Size; v++ {
				got := sp.Between(v, s, e)
				want := sp.BetweenExclusive(v, s, e) || v == e
				if got != want {
					t.Fatalf("Between(%d,%d,%d)=%v, BetweenExclusive||v==e=%v", v, s, e, got, want)
				}
			}
		}
	}
}

func TestFindSuccessorInSorted(t *testing.T) {
	sorted := []ID{10, 20, 30, 40}
	cases := []struct {
		target ID
		want   ID
	}{
		{5, 10},
		{10, 10},
		{15, 20},
		{40, 40},
		{41, 10}, // wraps
	}
	for _, c := range cases {
		if got := FindSuccessorInSorted(c.target, sorted); got != c.want {
			t.Errorf("FindSuccessorInSorted(%d) = %d, want %d", c.target, got, c.want)
		}
	}
}

func TestEvenlyDistributedIDsDistinctWhenNLEQSize(t *testing.T) {
	sp := mustSpace(t, 8)
	for _, n := range []int{1, 2, 10, 100, 256} {
		ids := sp.EvenlyDistributedIDs(n)
		seen := make(map[ID]bool, n)
		for _, id := range ids {
			if seen[id] {
				t.Fatalf("n=%d: duplicate id %d", n, id)
			}
			seen[id] = true
			if id >= sp.Size {
				t.Fatalf("n=%d: id %d out of range [0, %d)", n, id, sp.Size)
			}
		}
	}
}

func TestEvenlyDistributedIDsCollideWhenNGreaterThanSize(t *testing.T) {
	sp := mustSpace(t, 4) // Size = 16
	ids := sp.EvenlyDistributedIDs(20)
	seen := make(map[ID]bool)
	dup := false
	for _, id := range ids {
		if seen[id] {
			dup = true
		}
		seen[id] = true
	}
	if !dup {
		t.Error("expected a collision when N > RING, found none")
	}
}

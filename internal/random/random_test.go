package random

import "testing"

func TestSourceRanges(t *testing.T) {
	s := New(42)

	for i := 0; i < 1000; i++ {
		if v := s.Int(7); v < 0 || v >= 7 {
			t.Fatalf("Int(7) = %d, out of range", v)
		}
		if v := s.Range(20, 30); v < 20 || v >= 30 {
			t.Fatalf("Range(20, 30) = %f, out of range", v)
		}
		if v := s.Float(); v < 0 || v >= 1 {
			t.Fatalf("Float() = %f, out of range", v)
		}
	}
}

func TestSourceIntNonPositive(t *testing.T) {
	s := New(1)
	if s.Int(0) != 0 || s.Int(-5) != 0 {
		t.Error("Int() with non-positive bound should return 0")
	}
}

func TestSourceDeterminism(t *testing.T) {
	a, b := New(12345), New(12345)
	for i := 0; i < 50; i++ {
		if a.Float() != b.Float() {
			t.Fatal("same seed produced different sequences")
		}
	}
}

func TestPick(t *testing.T) {
	s := New(7)
	list := []string{"#516143", "#6F856F", "#7B6440", "#554128"}
	seen := make(map[string]bool)

	for i := 0; i < 200; i++ {
		seen[Pick(s, list)] = true
	}
	if len(seen) != len(list) {
		t.Errorf("Pick() covered %d of %d elements", len(seen), len(list))
	}

	if got := Pick[int](s, nil); got != 0 {
		t.Errorf("Pick() on empty list = %d, expected zero value", got)
	}
}

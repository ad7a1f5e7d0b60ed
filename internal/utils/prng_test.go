package utils

import "testing"

func TestPRNGDeterministicWithSeed(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("same seed diverged at step %d", i)
		}
	}
}

func TestFloatRangeBounds(t *testing.T) {
	rng := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		v := rng.FloatRange(5, 10)
		if v < 5 || v >= 10 {
			t.Fatalf("FloatRange(5, 10) = %f, out of bounds", v)
		}
	}
}

func TestChooseWeightedIndexRange(t *testing.T) {
	rng := NewPRNGService(1)
	weights := []int{60, 20, 15, 5}
	counts := make([]int, len(weights))
	for i := 0; i < 10000; i++ {
		idx := rng.ChooseWeighted(weights)
		if idx < 0 || idx >= len(weights) {
			t.Fatalf("index %d out of range", idx)
		}
		counts[idx]++
	}
	// Самый тяжёлый вес должен выпадать чаще самого лёгкого
	if counts[0] <= counts[3] {
		t.Fatalf("weight 60 picked %d times, weight 5 picked %d times", counts[0], counts[3])
	}
}

func TestChooseWeightedDegenerate(t *testing.T) {
	rng := NewPRNGService(1)
	if got := rng.ChooseWeighted(nil); got != 0 {
		t.Fatalf("empty weights = %d, want 0", got)
	}
	if got := rng.ChooseWeighted([]int{0, 0}); got != 0 {
		t.Fatalf("zero weights = %d, want 0", got)
	}
}

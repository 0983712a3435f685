package genoseq

import (
	"math/rand"
	"strings"
	"testing"
)

func randomSequence(n int, seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	bases := []byte("ACGT")
	b := make([]byte, n)
	for i := range b {
		b[i] = bases[rng.Intn(4)]
	}
	return string(b)
}

func TestFindPatternsPeriodic(t *testing.T) {
	seq := strings.Repeat("ACGT", 1000)
	patterns := NewPatternDetector().FindPatterns(seq)

	positions, ok := patterns["ACGTACGT"]
	if !ok {
		t.Fatal("expected ACGTACGT among detected patterns")
	}
	if len(positions) <= 2 {
		t.Fatalf("expected more than 2 positions, got %d", len(positions))
	}
	for i := 1; i < len(positions); i++ {
		if positions[i] <= positions[i-1] {
			t.Fatal("positions not in ascending order")
		}
	}
	for key := range patterns {
		if len(key) < MinPatternLength || len(key) > MaxPatternLength {
			t.Fatalf("pattern key %q outside length bounds", key)
		}
		if len(patterns[key]) <= 2 {
			t.Fatalf("pattern %q retained with only %d positions", key, len(patterns[key]))
		}
	}
}

func TestIsHighlyRepetitive(t *testing.T) {
	d := NewPatternDetector()
	if !d.IsHighlyRepetitive(strings.Repeat("ACGT", 1000)) {
		t.Fatal("periodic sequence should be highly repetitive")
	}
	if d.IsHighlyRepetitive(randomSequence(200, 42)) {
		t.Fatal("random sequence should not be highly repetitive")
	}
}

func TestFindPatternsShortSequence(t *testing.T) {
	if got := NewPatternDetector().FindPatterns("ACGTACG"); len(got) != 0 {
		t.Fatalf("expected no patterns below the minimum window, got %d", len(got))
	}
}

func TestFindPatternsMemoized(t *testing.T) {
	d := NewPatternDetector()
	seq := strings.Repeat("ACGT", 100)
	first := d.FindPatterns(seq)
	second := d.FindPatterns(seq)
	if len(first) != len(second) {
		t.Fatalf("memoized result differs: %d vs %d patterns", len(first), len(second))
	}
	if d.cache.Len() != 1 {
		t.Fatalf("expected a single cache entry, got %d", d.cache.Len())
	}
}

package genoseq

import (
	"math"
	"strings"
	"testing"
)

func TestQualityScores(t *testing.T) {
	scores := QualityScores("AATACA")
	// pos 0: base 30; pos 1: homopolymer +5; pos 2: base; pos 3: equals
	// two back ('A' at 1) +3; pos 4: base; pos 5: equals two back +3.
	want := []uint8{30, 35, 30, 33, 30, 33}
	for i, w := range want {
		if scores[i] != w {
			t.Fatalf("score[%d] = %d, want %d", i, scores[i], w)
		}
	}
}

func TestQualityScoresHomopolymerRun(t *testing.T) {
	scores := QualityScores("AAAA")
	want := []uint8{30, 35, 38, 38}
	for i, w := range want {
		if scores[i] != w {
			t.Fatalf("score[%d] = %d, want %d", i, scores[i], w)
		}
	}
	for i, s := range scores {
		if s > MaxQualityScore {
			t.Fatalf("score[%d] = %d exceeds cap %d", i, s, MaxQualityScore)
		}
	}
}

func TestErrorRate(t *testing.T) {
	// 4 bases, one homopolymer extension at each of positions 1..3.
	if got := ErrorRate("AAAA"); math.Abs(got-0.075) > 1e-9 {
		t.Fatalf("ErrorRate(AAAA) = %v, want 0.075", got)
	}
	// One N, no repeats.
	if got := ErrorRate("ACGTN"); math.Abs(got-0.2) > 1e-9 {
		t.Fatalf("ErrorRate(ACGTN) = %v, want 0.2", got)
	}
	if got := ErrorRate(strings.Repeat("ACGT", 10)); got != 0 {
		t.Fatalf("ErrorRate of non-repeating ACGT = %v, want 0", got)
	}
}

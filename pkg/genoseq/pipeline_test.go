package genoseq

import (
	"errors"
	"strings"
	"testing"
)

func TestPipelineProcessCleansInput(t *testing.T) {
	c := newTestCompressor(t, 0)
	p := NewPipeline(c)

	raw := strings.Repeat("acgt-7x", 30) // cleans to ACGT repeated 30 times
	blob, metadata, err := p.Process(raw)
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	got, err := c.Decompress(blob, metadata)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if got != strings.Repeat("ACGT", 30) {
		t.Fatal("pipeline did not clean and uppercase input")
	}
}

func TestPipelineStampsCaches(t *testing.T) {
	c := newTestCompressor(t, 0)
	p := NewPipeline(c)

	blob, metadata, err := p.Process(strings.Repeat("ACGT", 50))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if blob == "" || len(metadata) == 0 {
		t.Fatal("expected blob and metadata")
	}
	for i, meta := range metadata {
		if len(meta.CachedPatterns) == 0 {
			t.Fatalf("chunk %d: pattern cache snapshot missing", i)
		}
		if len(meta.QualityCache) != 1 {
			t.Fatalf("chunk %d: expected one quality cache entry, got %d", i, len(meta.QualityCache))
		}
	}

	key := sequenceKey(strings.Repeat("ACGT", 50))
	scores, ok := p.CachedQuality()[key]
	if !ok {
		t.Fatal("quality cache not keyed by content hash")
	}
	if len(scores) != 200 {
		t.Fatalf("cached scores length %d, want 200", len(scores))
	}
}

func TestPipelineCachesAccumulate(t *testing.T) {
	c := newTestCompressor(t, 0)
	p := NewPipeline(c)

	seq := strings.Repeat("ACGT", 50)
	if _, _, err := p.Process(seq); err != nil {
		t.Fatalf("process: %v", err)
	}
	firstPatterns := p.CachedPatterns()
	positions := len(firstPatterns["ACGTACGT"])
	if positions <= 2 {
		t.Fatalf("expected ACGTACGT in cache with >2 positions, got %d", positions)
	}

	// Same sequence again: positions append, never replace.
	if _, _, err := p.Process(seq); err != nil {
		t.Fatalf("process: %v", err)
	}
	if got := len(p.CachedPatterns()["ACGTACGT"]); got != 2*positions {
		t.Fatalf("expected accumulated positions %d, got %d", 2*positions, got)
	}

	// A different sequence adds a second quality entry.
	if _, _, err := p.Process(randomSequence(150, 9)); err != nil {
		t.Fatalf("process: %v", err)
	}
	if got := len(p.CachedQuality()); got != 2 {
		t.Fatalf("expected 2 quality cache entries, got %d", got)
	}
}

func TestPipelineRejectsUnsalvageableInput(t *testing.T) {
	c := newTestCompressor(t, 0)
	p := NewPipeline(c)
	if _, _, err := p.Process("12345-!"); !errors.Is(err, ErrInvalidSequence) {
		t.Fatalf("expected ErrInvalidSequence, got %v", err)
	}
}

package genoseq

import (
	"crypto/sha256"

	lru "github.com/hashicorp/golang-lru/v2"
)

// patternCacheSize bounds the per-detector memoization of chunk scans.
const patternCacheSize = 128

// PatternDetector finds repeated substrings of length MinPatternLength to
// MaxPatternLength within a chunk. Scans are memoized per chunk content, so
// repeated passes over the same chunk (compression plus the pipeline's
// cache merge) cost one scan.
type PatternDetector struct {
	cache *lru.Cache[[32]byte, map[string][]int]
}

// NewPatternDetector creates a detector with a bounded scan cache.
func NewPatternDetector() *PatternDetector {
	cache, err := lru.New[[32]byte, map[string][]int](patternCacheSize)
	if err != nil {
		// lru.New fails only on a non-positive size.
		panic(err)
	}
	return &PatternDetector{cache: cache}
}

// FindPatterns maps each substring of length 8..32 that starts at more than
// two positions to the ordered list of its start positions. Occurrences are
// counted at every start index, overlapping included. The returned map is
// shared with the detector's cache and must be treated as read-only.
func (d *PatternDetector) FindPatterns(sequence string) map[string][]int {
	key := sha256.Sum256([]byte(sequence))
	if cached, ok := d.cache.Get(key); ok {
		return cached
	}
	patterns := findPatterns(sequence)
	d.cache.Add(key, patterns)
	return patterns
}

func findPatterns(sequence string) map[string][]int {
	patterns := make(map[string][]int)
	for length := MinPatternLength; length <= MaxPatternLength; length++ {
		if length > len(sequence) {
			break
		}
		index := make(map[string][]int)
		for i := 0; i+length <= len(sequence); i++ {
			sub := sequence[i : i+length]
			index[sub] = append(index[sub], i)
		}
		for sub, positions := range index {
			if len(positions) > 2 {
				patterns[sub] = positions
			}
		}
	}
	return patterns
}

// IsHighlyRepetitive reports whether the sum of all recorded pattern
// occurrence counts exceeds 30% of the sequence length. Highly repetitive
// chunks are routed to the repeat-friendly compression path.
func (d *PatternDetector) IsHighlyRepetitive(sequence string) bool {
	total := 0
	for _, positions := range d.FindPatterns(sequence) {
		total += len(positions)
	}
	return float64(total) > float64(len(sequence))*0.3
}

package genoseq

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// Pipeline wraps a Compressor with preprocessing and two cross-call caches:
// pattern -> accumulated positions across every sequence processed, and
// sequence hash -> quality scores. The caches only enrich emitted metadata;
// round-trip correctness never depends on them. They grow for the lifetime
// of the pipeline and never evict. Access is serialized internally, one
// Process call at a time per instance.
type Pipeline struct {
	compressor *Compressor

	mu       sync.Mutex
	patterns map[string][]int
	quality  map[string][]uint8
}

// NewPipeline wraps an existing compressor. The pipeline does not own the
// compressor; closing it stays with the caller.
func NewPipeline(compressor *Compressor) *Pipeline {
	return &Pipeline{
		compressor: compressor,
		patterns:   make(map[string][]int),
		quality:    make(map[string][]uint8),
	}
}

// sequenceKey is the content hash used to key the quality cache.
func sequenceKey(sequence string) string {
	sum := sha256.Sum256([]byte(sequence))
	return hex.EncodeToString(sum[:])
}

// Process strips characters outside the alphabet, uppercases, updates both
// caches, compresses the cleaned sequence, and stamps a snapshot of the
// caches onto every chunk's metadata. The cleaned sequence still has to
// satisfy the validator, so over-short or fully stripped input fails with
// ErrInvalidSequence.
func (p *Pipeline) Process(raw string) (string, []ChunkMetadata, error) {
	cleaned := CleanSequence(raw)

	p.mu.Lock()
	for pattern, positions := range p.compressor.detector.FindPatterns(cleaned) {
		p.patterns[pattern] = append(p.patterns[pattern], positions...)
	}
	p.quality[sequenceKey(cleaned)] = QualityScores(cleaned)
	p.mu.Unlock()

	blob, metadata, err := p.compressor.Compress(cleaned)
	if err != nil {
		return "", nil, err
	}

	p.mu.Lock()
	patternSnap := copyPositions(p.patterns)
	qualitySnap := copyScores(p.quality)
	p.mu.Unlock()

	for i := range metadata {
		metadata[i].CachedPatterns = patternSnap
		metadata[i].QualityCache = qualitySnap
	}
	return blob, metadata, nil
}

// CachedPatterns returns a copy of the accumulated pattern cache.
func (p *Pipeline) CachedPatterns() map[string][]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return copyPositions(p.patterns)
}

// CachedQuality returns a copy of the accumulated quality cache.
func (p *Pipeline) CachedQuality() map[string][]uint8 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return copyScores(p.quality)
}

func copyPositions(src map[string][]int) map[string][]int {
	out := make(map[string][]int, len(src))
	for k, v := range src {
		positions := make([]int, len(v))
		copy(positions, v)
		out[k] = positions
	}
	return out
}

func copyScores(src map[string][]uint8) map[string][]uint8 {
	out := make(map[string][]uint8, len(src))
	for k, v := range src {
		scores := make([]uint8, len(v))
		copy(scores, v)
		out[k] = scores
	}
	return out
}

package genoseq

import (
	"fmt"
	"hash/crc32"
)

// chunkCompressor compresses one chunk at a time: encode with quality
// scores, detect repeats, pick the adaptive codec path, and assemble the
// metadata decode will need. Safe for concurrent use across chunks; the
// detector and codec it holds are shared.
type chunkCompressor struct {
	detector *PatternDetector
	codec    *codec
}

// compressChunk returns the compressed bytes for a chunk together with its
// metadata. The checksum covers the pre-compression encoded buffer, not the
// compressed bytes.
func (cc *chunkCompressor) compressChunk(chunk string) ([]byte, ChunkMetadata, error) {
	scores := QualityScores(chunk)
	encoded, err := EncodeSequence(chunk, scores)
	if err != nil {
		return nil, ChunkMetadata{}, fmt.Errorf("failed to encode chunk: %w", err)
	}

	patterns := cc.detector.FindPatterns(chunk)

	kind := CompressionDeflate
	if cc.detector.IsHighlyRepetitive(chunk) {
		kind = CompressionZstd
	}
	compressed, err := cc.codec.compress(kind, encoded)
	if err != nil {
		return nil, ChunkMetadata{}, err
	}

	meta := ChunkMetadata{
		OriginalLength:   len(chunk),
		CompressedLength: len(compressed),
		Patterns:         patterns,
		Checksum:         crc32.ChecksumIEEE(encoded),
		QualityScores:    scores,
		NPositions:       nPositions(chunk),
		CompressionType:  kind,
		ErrorRate:        ErrorRate(chunk),
	}
	return compressed, meta, nil
}

// splitChunks slices a sequence into contiguous chunks of at most chunkSize
// symbols; the last chunk may be shorter.
func splitChunks(sequence string, chunkSize int) []string {
	chunks := make([]string, 0, (len(sequence)+chunkSize-1)/chunkSize)
	for start := 0; start < len(sequence); start += chunkSize {
		end := start + chunkSize
		if end > len(sequence) {
			end = len(sequence)
		}
		chunks = append(chunks, sequence[start:end])
	}
	return chunks
}

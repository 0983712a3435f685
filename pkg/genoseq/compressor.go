package genoseq

import (
	"encoding/base64"
	"fmt"
	"hash/crc32"
	"runtime"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// maxWorkers caps the pool to avoid memory exhaustion on large machines.
const maxWorkers = 32

// Compressor is the chunk orchestrator: it validates a sequence, compresses
// its chunks in parallel, merges the result into a base64 blob with an
// ordered metadata list, and reverses the pipeline on decode. It also keeps
// the append-only history served by Stats. Safe for concurrent use.
type Compressor struct {
	chunkSize int
	workers   int
	detector  *PatternDetector
	codec     *codec

	statsMu sync.Mutex
	stats   []CompressionStats
}

// NewCompressor creates a compressor. chunkSize <= 0 selects
// DefaultChunkSize; workers <= 0 selects the CPU count, capped at 32.
func NewCompressor(chunkSize, workers int) (*Compressor, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > maxWorkers {
		workers = maxWorkers
	}
	cdc, err := newCodec()
	if err != nil {
		return nil, err
	}
	return &Compressor{
		chunkSize: chunkSize,
		workers:   workers,
		detector:  NewPatternDetector(),
		codec:     cdc,
	}, nil
}

// ChunkSize returns the configured chunk size in symbols.
func (c *Compressor) ChunkSize() int { return c.chunkSize }

// Compress validates a sequence, compresses its chunks in parallel and
// returns the base64-encoded blob plus one metadata entry per chunk, in
// chunk order. The blob cannot be decoded without its metadata; callers
// must persist the pair as one unit. A failure in any chunk aborts the
// whole call with no partial result.
func (c *Compressor) Compress(sequence string) (string, []ChunkMetadata, error) {
	seq, err := ValidateSequence(sequence)
	if err != nil {
		return "", nil, err
	}

	chunks := splitChunks(seq, c.chunkSize)
	compressed := make([][]byte, len(chunks))
	metadata := make([]ChunkMetadata, len(chunks))
	cc := &chunkCompressor{detector: c.detector, codec: c.codec}

	// Results land in their submission slot, so output order matches chunk
	// order regardless of completion order.
	var g errgroup.Group
	g.SetLimit(c.workers)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			data, meta, err := cc.compressChunk(chunk)
			if err != nil {
				return fmt.Errorf("chunk %d: %w", i, err)
			}
			compressed[i] = data
			metadata[i] = meta
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", nil, err
	}

	total := 0
	for _, data := range compressed {
		total += len(data)
	}
	merged := make([]byte, 0, total)
	for _, data := range compressed {
		merged = append(merged, data...)
	}

	// Integrity signal over the merged buffer; logged, not persisted.
	checksum := crc32.ChecksumIEEE(merged)
	blob := base64.StdEncoding.EncodeToString(merged)

	stats := CompressionStats{
		OriginalSize:     len(seq),
		CompressedSize:   len(blob),
		CompressionRatio: float64(len(blob)) / float64(len(seq)),
		Algorithm:        "adaptive",
	}
	for _, meta := range metadata {
		stats.QualityScore += meanQuality(meta.QualityScores)
		stats.ErrorRate += meta.ErrorRate
	}
	stats.QualityScore /= float64(len(metadata))
	stats.ErrorRate /= float64(len(metadata))

	c.statsMu.Lock()
	c.stats = append(c.stats, stats)
	c.statsMu.Unlock()

	log.WithFields(log.Fields{
		"original_size":   stats.OriginalSize,
		"compressed_size": stats.CompressedSize,
		"chunks":          len(chunks),
		"checksum":        fmt.Sprintf("%08x", checksum),
	}).Info("compressed sequence")
	log.Infof("average quality score: %.2f", stats.QualityScore)
	log.Infof("average error rate: %.4f", stats.ErrorRate)

	return blob, metadata, nil
}

// Decompress reverses Compress. It walks the metadata list in order,
// slicing the decoded buffer by each entry's compressed length, verifies
// every chunk's CRC-32 against its stored checksum, and reassembles the
// original sequence. A checksum mismatch or decode error aborts the whole
// call; quality scores below QualityThreshold only log a warning.
func (c *Compressor) Decompress(blob string, metadata []ChunkMetadata) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("failed to decode blob: %w", err)
	}

	var sb strings.Builder
	cursor := 0
	for i, meta := range metadata {
		if meta.CompressedLength < 0 || cursor+meta.CompressedLength > len(decoded) {
			return "", fmt.Errorf("chunk %d: compressed length %d exceeds remaining blob size %d",
				i, meta.CompressedLength, len(decoded)-cursor)
		}
		slice := decoded[cursor : cursor+meta.CompressedLength]
		cursor += meta.CompressedLength

		encoded, err := c.codec.decompress(meta.CompressionType, slice)
		if err != nil {
			return "", fmt.Errorf("chunk %d: %w", i, err)
		}
		if sum := crc32.ChecksumIEEE(encoded); sum != meta.Checksum {
			return "", fmt.Errorf("chunk %d: stored %08x, computed %08x: %w",
				i, meta.Checksum, sum, ErrChecksumMismatch)
		}

		for _, score := range meta.QualityScores {
			if score < QualityThreshold {
				log.Warnf("low quality scores detected in chunk %d", i)
				break
			}
		}

		bases, _, err := DecodeSequence(encoded, meta.OriginalLength)
		if err != nil {
			return "", fmt.Errorf("chunk %d: %w", i, err)
		}
		chunk, err := restoreN(bases, meta.NPositions)
		if err != nil {
			return "", fmt.Errorf("chunk %d: %w", i, err)
		}
		sb.WriteString(chunk)
	}

	if cursor != len(decoded) {
		return "", fmt.Errorf("blob has %d trailing bytes not covered by metadata", len(decoded)-cursor)
	}
	return sb.String(), nil
}

// Stats returns a snapshot of the compression history, one record per
// successful Compress call in call order.
func (c *Compressor) Stats() []CompressionStats {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	out := make([]CompressionStats, len(c.stats))
	copy(out, c.stats)
	return out
}

// Close releases the compressor's codec resources.
func (c *Compressor) Close() error {
	return c.codec.Close()
}

package genoseq

import "time"

// CompressionType identifies the byte-level codec applied to a chunk. The
// selector is adaptive: highly repetitive chunks take the zstd path, the
// rest take DEFLATE at maximum level.
type CompressionType string

const (
	CompressionDeflate CompressionType = "deflate"
	CompressionZstd    CompressionType = "zstd"
)

// Codec limits and defaults.
const (
	// DefaultChunkSize is the number of sequence symbols per chunk (1 MiB).
	DefaultChunkSize = 1024 * 1024

	// MinSequenceLength is the shortest sequence the validator admits.
	MinSequenceLength = 100

	// MinPatternLength and MaxPatternLength bound the repeat-detection window.
	MinPatternLength = 8
	MaxPatternLength = 32

	// QualityThreshold is the score below which decode logs a warning.
	QualityThreshold = 30

	// MaxQualityScore caps the synthesized per-base confidence score.
	MaxQualityScore = 40
)

// ChunkMetadata describes one compressed chunk. The metadata list is ordered
// identically to the chunk order and decode consumes it in that order; the
// blob is not self-describing without it.
type ChunkMetadata struct {
	OriginalLength   int              `json:"original_length"`
	CompressedLength int              `json:"compressed_length"`
	Patterns         map[string][]int `json:"patterns,omitempty"`
	Checksum         uint32           `json:"checksum"`
	QualityScores    []uint8          `json:"quality_scores"`
	NPositions       []int            `json:"n_positions,omitempty"`
	CompressionType  CompressionType  `json:"compression_type"`
	ErrorRate        float64          `json:"error_rate"`

	// Stamped by the Pipeline only: snapshots of the cross-call caches at
	// the time of compression. Not required for round-trip correctness.
	CachedPatterns map[string][]int   `json:"cached_patterns,omitempty"`
	QualityCache   map[string][]uint8 `json:"quality_cache,omitempty"`
}

// CompressionStats is one record of the append-only history kept per
// Compressor instance, appended once per successful Compress call.
// CompressionRatio divides the text-encoded blob length by the raw symbol
// count; it is an approximation, not a byte-for-byte ratio, so consumers
// needing exact accounting read OriginalSize and CompressedSize directly.
type CompressionStats struct {
	OriginalSize     int     `json:"original_size"`
	CompressedSize   int     `json:"compressed_size"`
	CompressionRatio float64 `json:"compression_ratio"`
	Algorithm        string  `json:"algorithm"`
	QualityScore     float64 `json:"quality_score"`
	ErrorRate        float64 `json:"error_rate"`
}

// ArchiveMetadata is the JSON sidecar persisted next to a blob file. It
// carries everything decode needs plus provenance, in the same spirit as a
// dataset metadata header.
type ArchiveMetadata struct {
	Format    string          `json:"format"`
	Version   string          `json:"version"`
	Created   time.Time       `json:"created"`
	ChunkSize int             `json:"chunk_size"`
	Sequence  SequenceInfo    `json:"sequence"`
	Chunks    []ChunkMetadata `json:"chunks"`
}

// SequenceInfo summarizes the sequence an archive was built from.
type SequenceInfo struct {
	Length        int     `json:"length"`
	MeanQuality   float64 `json:"mean_quality"`
	MeanErrorRate float64 `json:"mean_error_rate"`
}

// ArchiveFormat and ArchiveVersion identify the sidecar layout.
const (
	ArchiveFormat  = "gseq"
	ArchiveVersion = "1.0"
)

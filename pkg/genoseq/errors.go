package genoseq

import "errors"

// Sentinel errors surfaced by the codec. Callers match them with errors.Is;
// wrapped messages carry the position or chunk index that triggered them.
var (
	// ErrInvalidSequence is returned when input fails validation: empty,
	// shorter than MinSequenceLength, or containing characters outside
	// the A/C/G/T/N alphabet.
	ErrInvalidSequence = errors.New("invalid genome sequence")

	// ErrChecksumMismatch is returned when a decompressed chunk's CRC-32
	// does not match the checksum stored in its metadata. The whole
	// decode aborts; no partial sequence is returned.
	ErrChecksumMismatch = errors.New("chunk checksum mismatch")
)

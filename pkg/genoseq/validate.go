package genoseq

import (
	"fmt"
	"strings"
)

// validBase reports whether b is in the codec alphabet. Input is expected
// to be uppercased already.
func validBase(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T', 'N':
		return true
	}
	return false
}

// ValidateSequence normalizes a raw sequence to uppercase and returns it, or
// an error wrapping ErrInvalidSequence if the input is empty, shorter than
// MinSequenceLength, or contains a character outside A/C/G/T/N.
func ValidateSequence(raw string) (string, error) {
	s := strings.ToUpper(raw)
	if s == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidSequence)
	}
	if len(s) < MinSequenceLength {
		return "", fmt.Errorf("%w: length %d below minimum %d", ErrInvalidSequence, len(s), MinSequenceLength)
	}
	for i := 0; i < len(s); i++ {
		if !validBase(s[i]) {
			return "", fmt.Errorf("%w: disallowed character %q at position %d", ErrInvalidSequence, s[i], i)
		}
	}
	return s, nil
}

// CleanSequence uppercases raw and drops every character outside the
// alphabet. Used by the pipeline's preprocessing step; the result still has
// to pass ValidateSequence before compression.
func CleanSequence(raw string) string {
	s := strings.ToUpper(raw)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if validBase(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

package genoseq

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseChunkSize parses a chunk size string (e.g., "1M", "512K", "65536")
// into a symbol count. A bare number is taken as-is; K/M/G suffixes apply
// binary multipliers.
func ParseChunkSize(sizeStr string) (int, error) {
	s := strings.ToUpper(strings.TrimSpace(sizeStr))
	if s == "" {
		return 0, fmt.Errorf("empty chunk size")
	}

	multiplier := 1
	switch {
	case strings.HasSuffix(s, "K"):
		multiplier = 1024
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "M"):
		multiplier = 1024 * 1024
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "G"):
		multiplier = 1024 * 1024 * 1024
		s = s[:len(s)-1]
	}

	value, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid chunk size: %s", sizeStr)
	}
	size := value * multiplier
	if size <= 0 {
		return 0, fmt.Errorf("chunk size must be positive, got: %d", size)
	}
	return size, nil
}

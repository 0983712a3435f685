package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// readSequenceFile reads a sequence from path. FASTA headers are skipped and
// whitespace is dropped, so both raw text and single- or multi-record FASTA
// work; multi-record files are concatenated. Character cleanup beyond that
// is left to the pipeline.
func readSequenceFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ">") || strings.HasPrefix(line, ";") {
			continue
		}
		sb.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return sb.String(), nil
}

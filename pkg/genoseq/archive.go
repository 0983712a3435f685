package genoseq

import (
	"encoding/json"
	"fmt"
	"time"
)

// An archive is the on-storage form of one compressed sequence: the blob
// text at <path>, and a JSON sidecar at <path>.json holding the metadata
// list the blob cannot be decoded without. The two files are one logical
// unit and must travel together.

// sidecarPath returns the metadata path for a blob path.
func sidecarPath(path string) string { return path + ".json" }

// WriteArchive persists a blob and its metadata through storage.
func WriteArchive(storage Storage, path string, blob string, metadata []ChunkMetadata, chunkSize int) error {
	info := SequenceInfo{}
	for _, meta := range metadata {
		info.Length += meta.OriginalLength
		info.MeanQuality += meanQuality(meta.QualityScores)
		info.MeanErrorRate += meta.ErrorRate
	}
	if len(metadata) > 0 {
		info.MeanQuality /= float64(len(metadata))
		info.MeanErrorRate /= float64(len(metadata))
	}

	archive := ArchiveMetadata{
		Format:    ArchiveFormat,
		Version:   ArchiveVersion,
		Created:   time.Now().UTC(),
		ChunkSize: chunkSize,
		Sequence:  info,
		Chunks:    metadata,
	}
	sidecar, err := json.MarshalIndent(archive, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal archive metadata: %w", err)
	}

	if err := storage.WriteFile(path, []byte(blob)); err != nil {
		return fmt.Errorf("failed to write blob: %w", err)
	}
	if err := storage.WriteFile(sidecarPath(path), sidecar); err != nil {
		return fmt.Errorf("failed to write archive metadata: %w", err)
	}
	return nil
}

// OpenArchive loads a blob and its metadata back from storage.
func OpenArchive(storage Storage, path string) (string, ArchiveMetadata, error) {
	var archive ArchiveMetadata

	sidecar, err := storage.ReadFile(sidecarPath(path))
	if err != nil {
		return "", archive, fmt.Errorf("failed to read archive metadata: %w", err)
	}
	if err := json.Unmarshal(sidecar, &archive); err != nil {
		return "", archive, fmt.Errorf("failed to parse archive metadata: %w", err)
	}
	if archive.Format != ArchiveFormat {
		return "", archive, fmt.Errorf("unexpected archive format %q", archive.Format)
	}

	blob, err := storage.ReadFile(path)
	if err != nil {
		return "", archive, fmt.Errorf("failed to read blob: %w", err)
	}
	return string(blob), archive, nil
}

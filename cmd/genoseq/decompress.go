package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/genovault/genoseq-go/pkg/genoseq"
	"github.com/spf13/cobra"
)

var decompressCmd = &cobra.Command{
	Use:   "decompress <input.gsq> <output>",
	Short: "Restore a sequence from a genoseq archive",
	Long: `Decode a genoseq archive back into plain sequence text.

Reads the blob at <input.gsq> and its metadata sidecar at <input.gsq.json>,
verifies every chunk's CRC-32 checksum, and writes the reconstructed
sequence to <output>. Any integrity failure aborts with no partial output.

Example:
  genoseq decompress genome.gsq genome.txt`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inDir, inName := filepath.Split(args[0])
		if inDir == "" {
			inDir = "."
		}
		storage := genoseq.NewLocalStorage(inDir)

		blob, archive, err := genoseq.OpenArchive(storage, inName)
		if err != nil {
			return err
		}

		compressor, err := genoseq.NewCompressor(archive.ChunkSize, 0)
		if err != nil {
			return fmt.Errorf("failed to create compressor: %w", err)
		}
		defer compressor.Close()

		sequence, err := compressor.Decompress(blob, archive.Chunks)
		if err != nil {
			return fmt.Errorf("failed to decompress: %w", err)
		}

		if err := os.WriteFile(args[1], []byte(sequence), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}

		fmt.Printf("Restored %d symbols from %d chunks to %s\n",
			len(sequence), len(archive.Chunks), args[1])
		return nil
	},
}

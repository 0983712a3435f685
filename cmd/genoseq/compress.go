package main

import (
	"fmt"
	"path/filepath"

	"github.com/genovault/genoseq-go/pkg/genoseq"
	"github.com/spf13/cobra"
)

var (
	chunkSizeStr string
	workers      int
)

var compressCmd = &cobra.Command{
	Use:   "compress <input> <output.gsq>",
	Short: "Compress a sequence file into a genoseq archive",
	Long: `Compress a nucleotide sequence into a genoseq archive.

The input may be raw sequence text or FASTA; headers and whitespace are
skipped and characters outside A/C/G/T/N are stripped before compression.
The archive is two files written next to each other: the blob at
<output.gsq> and its metadata sidecar at <output.gsq.json>. The blob
cannot be decoded without the sidecar; keep them together.

Examples:
  genoseq compress genome.fa genome.gsq
  genoseq compress genome.fa genome.gsq --chunk-size 256K --workers 8`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		chunkSize, err := genoseq.ParseChunkSize(chunkSizeStr)
		if err != nil {
			return fmt.Errorf("invalid chunk size: %w", err)
		}

		sequence, err := readSequenceFile(args[0])
		if err != nil {
			return err
		}

		compressor, err := genoseq.NewCompressor(chunkSize, workers)
		if err != nil {
			return fmt.Errorf("failed to create compressor: %w", err)
		}
		defer compressor.Close()

		pipeline := genoseq.NewPipeline(compressor)
		blob, metadata, err := pipeline.Process(sequence)
		if err != nil {
			return fmt.Errorf("failed to compress: %w", err)
		}

		outDir, outName := filepath.Split(args[1])
		if outDir == "" {
			outDir = "."
		}
		storage := genoseq.NewLocalStorage(outDir)
		if err := genoseq.WriteArchive(storage, outName, blob, metadata, chunkSize); err != nil {
			return err
		}

		stats := compressor.Stats()
		last := stats[len(stats)-1]
		fmt.Printf("Compressed %d symbols into %d chunks\n", last.OriginalSize, len(metadata))
		fmt.Printf("  Blob size: %d bytes (ratio %.3f)\n", last.CompressedSize, last.CompressionRatio)
		fmt.Printf("  Mean quality: %.2f  Mean error rate: %.4f\n", last.QualityScore, last.ErrorRate)
		fmt.Printf("  Archive: %s (+ %s.json)\n", args[1], args[1])
		return nil
	},
}

func init() {
	compressCmd.Flags().StringVar(&chunkSizeStr, "chunk-size", "1M",
		"Chunk size in symbols (e.g., 256K, 1M)")
	compressCmd.Flags().IntVar(&workers, "workers", 0,
		"Number of parallel workers (0 = auto-detect CPU count)")
}

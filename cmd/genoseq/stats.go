package main

import (
	"fmt"
	"path/filepath"

	"github.com/genovault/genoseq-go/pkg/genoseq"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <archive.gsq>",
	Short: "Show statistics for a genoseq archive",
	Long: `Display statistics for a genoseq archive.

Statistics are read from the metadata sidecar without decoding the blob.

Example:
  genoseq stats genome.gsq`,
	Args: cobra.ExactArgs(1),
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

		fmt.Println("===========================================")
		fmt.Println("genoseq Archive Statistics")
		fmt.Println("===========================================")
		fmt.Println()
		fmt.Printf("Format: %s v%s\n", archive.Format, archive.Version)
		fmt.Printf("Created: %s\n", archive.Created.Format("2006-01-02 15:04:05"))
		fmt.Println()

		fmt.Println("Sequence:")
		fmt.Printf("  Length: %d symbols\n", archive.Sequence.Length)
		fmt.Printf("  Mean quality: %.2f\n", archive.Sequence.MeanQuality)
		fmt.Printf("  Mean error rate: %.4f\n", archive.Sequence.MeanErrorRate)
		fmt.Println()

		fmt.Println("Structure:")
		fmt.Printf("  Chunk size: %d symbols\n", archive.ChunkSize)
		fmt.Printf("  Total chunks: %d\n", len(archive.Chunks))
		fmt.Printf("  Blob size: %d bytes\n", len(blob))

		deflate, zst := 0, 0
		patterns := 0
		for _, chunk := range archive.Chunks {
			switch chunk.CompressionType {
			case genoseq.CompressionZstd:
				zst++
			default:
				deflate++
			}
			patterns += len(chunk.Patterns)
		}
		fmt.Printf("  Chunk codecs: %d deflate, %d zstd\n", deflate, zst)
		fmt.Printf("  Detected patterns: %d\n", patterns)

		return nil
	},
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "genoseq",
	Short: "genoseq - genome sequence codec tools",
	Long: `genoseq compresses nucleotide sequences into compact,
integrity-checked archives and restores them.

A sequence is packed with a 2-bit nucleotide encoding plus synthesized
per-base quality scores, chunked, compressed in parallel with an adaptive
codec, and stored as a base64 blob with a JSON metadata sidecar.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(decompressCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("genoseq version 1.0.0")
		fmt.Println("Genome sequence codec")
	},
}

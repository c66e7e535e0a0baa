package main

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/gradientaudit/internal/seed"
)

var extractOut string

var extractCmd = &cobra.Command{
	Use:   "extract <input-string>",
	Short: "Print the rendering seeds derived from an input string",
	Long: `Hashes the input string with SHA-256 and prints the normalized
rendering parameters the renderer would derive from it.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractOut, "out", "", "Write the table to a file instead of stdout")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	input := args[0]
	digest := sha256.Sum256([]byte(input))
	params := seed.FromString(input)

	var b strings.Builder
	fmt.Fprintf(&b, "Input:   %s\n", input)
	fmt.Fprintf(&b, "SHA-256: %x\n\n", digest)

	values := params.Values()
	for i, name := range seed.Names() {
		fmt.Fprintf(&b, "%-20s %.6f\n", name, values[i])
	}

	if extractOut == "" {
		fmt.Print(b.String())
		return nil
	}

	if dir := filepath.Dir(extractOut); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(extractOut, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Printf("Wrote %s\n", extractOut)
	return nil
}

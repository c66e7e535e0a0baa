package collide

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// maxListedNearPairs caps the enumeration in the text report; the counts
// and rates above it always cover the full set.
const maxListedNearPairs = 20

// WriteReport writes the multi-section collision summary to path, creating
// parent directories as needed.
func (r *Report) WriteReport(path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Visual Collision Analysis Summary (%s)\n", time.Now().Format(time.RFC1123))
	b.WriteString(strings.Repeat("=", 40) + "\n")
	b.WriteString("Parameters:\n")
	fmt.Fprintf(&b, "  Number of strings tested: %d\n", r.Samples)
	fmt.Fprintf(&b, "  Number of strings processed successfully: %d\n", r.Processed)
	fmt.Fprintf(&b, "  Number of strings failed: %d\n", r.Failed)
	fmt.Fprintf(&b, "  Renderer executable: %s\n", r.Generator)
	fmt.Fprintf(&b, "  Near collision threshold (Hamming): <= %d\n", r.NearDistance)
	fmt.Fprintf(&b, "  Analysis duration: %.2f seconds\n\n", r.Elapsed.Seconds())

	writeVariant(&b, r.PHash, r.NearDistance)
	writeVariant(&b, r.DHash, r.NearDistance)

	if len(r.FailedInputs) > 0 {
		b.WriteString("Failed inputs:\n")
		for _, input := range r.FailedInputs {
			fmt.Fprintf(&b, "  %s\n", input)
		}
		b.WriteString("\n")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func writeVariant(b *strings.Builder, stats VariantStats, nearDistance int) {
	fmt.Fprintf(b, "--- %s Results ---\n", stats.Variant)
	fmt.Fprintf(b, "  Unique hashes generated: %d\n", stats.Unique)
	fmt.Fprintf(b, "  Strings in exact collisions: %d (%d colliding groups)\n", stats.Involved, len(stats.Groups))
	fmt.Fprintf(b, "  Exact collision rate (strings involved): %.4f%%\n", stats.ExactRate*100)
	fmt.Fprintf(b, "  Near collision pairs (dist <= %d): %d\n", nearDistance, len(stats.NearPairs))
	fmt.Fprintf(b, "  Near collision rate (pairs): %.4f%%\n\n", stats.NearRate*100)

	if len(stats.Groups) > 0 {
		fmt.Fprintf(b, "%s exact colliding groups:\n", stats.Variant)
		for _, g := range stats.Groups {
			fmt.Fprintf(b, "  Hash %s: %v\n", g.Token, g.Inputs)
		}
		b.WriteString("\n")
	}

	if len(stats.NearPairs) > 0 {
		fmt.Fprintf(b, "%s near colliding pairs (hash1, hash2, distance <= %d):\n", stats.Variant, nearDistance)
		listed := stats.NearPairs
		if len(listed) > maxListedNearPairs {
			listed = listed[:maxListedNearPairs]
		}
		for _, p := range listed {
			fmt.Fprintf(b, "  (%s, %s, %d)\n", p.A, p.B, p.Distance)
		}
		if len(stats.NearPairs) > maxListedNearPairs {
			b.WriteString("  ... (further pairs omitted)\n")
		}
		b.WriteString("\n")
	}
}

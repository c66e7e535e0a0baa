package correlate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/gradientaudit/internal/seed"
)

// WriteReport writes the fixed-width correlation table to path, creating
// parent directories as needed.
func (r *Result) WriteReport(path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Correlation Analysis Results (%d random strings)\n", r.Processed)
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "%-20s | %-25s\n", "Parameter Seed", "Correlation(orig, rev)")
	b.WriteString(strings.Repeat("-", 50) + "\n")

	for _, name := range seed.Names() {
		fmt.Fprintf(&b, "%-20s | %-25.6f\n", name, r.Coefficients[name])
	}

	b.WriteString(strings.Repeat("-", 50) + "\n")
	if r.Failed > 0 {
		fmt.Fprintf(&b, "Skipped samples: %d\n", r.Failed)
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

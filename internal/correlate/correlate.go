// Package correlate measures whether string reversal leaks structure into
// the derived rendering seeds. A sound derivation scheme should show
// near-zero correlation per parameter, since a cryptographic hash fully
// decorrelates a string from its reversal.
package correlate

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/gradientaudit/internal/seed"
)

// alphabet matches the original analyzer: ASCII letters, digits and
// punctuation.
const alphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Config controls a correlation run.
type Config struct {
	Samples int   // number of random strings to test
	MinLen  int   // minimum string length, inclusive
	MaxLen  int   // maximum string length, inclusive
	Seed    int64 // RNG seed; 0 means time-based
}

// NoDataError reports a run that produced zero successful samples.
type NoDataError struct {
	Samples int
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no successful samples out of %d", e.Samples)
}

// Result holds the per-parameter reversal correlations of one run.
type Result struct {
	Processed    int
	Failed       int
	Coefficients map[string]float64 // keyed by the full parameter vocabulary
}

func (c Config) validate() error {
	if c.Samples < 0 {
		return fmt.Errorf("samples must be >= 0, got %d", c.Samples)
	}
	if c.MinLen < 1 {
		return fmt.Errorf("min length must be >= 1, got %d", c.MinLen)
	}
	if c.MaxLen < c.MinLen {
		return fmt.Errorf("max length %d is below min length %d", c.MaxLen, c.MinLen)
	}
	return nil
}

// Run generates cfg.Samples random strings, derives seeds for each string
// and its reversal, and computes the per-parameter Pearson correlation
// between the two orderings. Trials whose extraction fails are skipped and
// counted; a run with no usable trials fails with NoDataError.
func Run(cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	rng := newRNG(cfg.Seed)
	names := seed.Names()
	orig := make(map[string][]float64, len(names))
	rev := make(map[string][]float64, len(names))

	slog.Info("Starting correlation analysis",
		"samples", cfg.Samples, "min_len", cfg.MinLen, "max_len", cfg.MaxLen)

	processed := 0
	failed := 0
	for i := 0; i < cfg.Samples; i++ {
		input := randomString(rng, cfg.MinLen, cfg.MaxLen)
		reversed := reverseString(input)

		origDigest := sha256.Sum256([]byte(input))
		revDigest := sha256.Sum256([]byte(reversed))

		psOrig, err := seed.FromDigest(origDigest[:])
		if err != nil {
			slog.Warn("Skipping sample, extraction failed", "input", input, "error", err)
			failed++
			continue
		}
		psRev, err := seed.FromDigest(revDigest[:])
		if err != nil {
			slog.Warn("Skipping sample, extraction failed", "input", reversed, "error", err)
			failed++
			continue
		}

		origValues := psOrig.Values()
		revValues := psRev.Values()
		for j, name := range names {
			orig[name] = append(orig[name], origValues[j])
			rev[name] = append(rev[name], revValues[j])
		}
		processed++

		if progress := cfg.Samples / 10; progress > 0 && (i+1)%progress == 0 {
			slog.Info("Correlation progress", "done", i+1, "total", cfg.Samples)
		}
	}

	if processed == 0 {
		return nil, &NoDataError{Samples: cfg.Samples}
	}

	coefficients := make(map[string]float64, len(names))
	for _, name := range names {
		coefficients[name] = pearson(orig[name], rev[name])
	}

	slog.Info("Correlation analysis complete", "processed", processed, "failed", failed)

	return &Result{
		Processed:    processed,
		Failed:       failed,
		Coefficients: coefficients,
	}, nil
}

// pearson returns the Pearson correlation of x and y. A zero-variance
// sequence makes the coefficient undefined; that degenerate case is
// reported as exactly 0.
func pearson(x, y []float64) float64 {
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return 0.0
	}
	return r
}

func newRNG(s int64) *rand.Rand {
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

func randomString(rng *rand.Rand, minLen, maxLen int) string {
	n := minLen + rng.Intn(maxLen-minLen+1)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

// reverseString reverses by rune, matching the renderer's notion of
// character reversal for non-ASCII input.
func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Package collide measures how often structurally different inputs render
// to perceptually identical or near-identical images. Each trial invokes
// the external renderer as a bounded-time subprocess and hashes its output
// with two independent perceptual-hash variants.
package collide

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/cwbudde/gradientaudit/internal/phash"
)

// alphanumeric matches the original analyzer's input alphabet.
const alphanumeric = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789"

const (
	defaultStringLen = 16
	defaultTimeout   = 60 * time.Second
)

// Config controls a collision run.
type Config struct {
	Samples      int           // number of random strings to render
	Generator    string        // path to the renderer executable
	NearDistance int           // max Hamming distance counted as a near collision
	TempDir      string        // directory for per-trial image files; defaults to os.TempDir()
	Timeout      time.Duration // wall-clock limit per renderer invocation; defaults to 60s
	StringLen    int           // length of generated inputs; defaults to 16
	Seed         int64         // RNG seed; 0 means time-based
}

// NoDataError reports a run in which every trial failed.
type NoDataError struct {
	Samples int
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no successful samples out of %d", e.Samples)
}

// trial is the outcome of one renderer invocation. Exactly one of hashes
// and err is meaningful; a single aggregation pass consumes both kinds.
type trial struct {
	input  string
	hashes phash.Pair
	err    error
}

func (c *Config) applyDefaults() {
	if c.TempDir == "" {
		c.TempDir = os.TempDir()
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.StringLen == 0 {
		c.StringLen = defaultStringLen
	}
}

func (c Config) validate() error {
	if c.Samples < 0 {
		return fmt.Errorf("samples must be >= 0, got %d", c.Samples)
	}
	if c.Generator == "" {
		return fmt.Errorf("generator executable path is required")
	}
	if c.NearDistance < 0 {
		return fmt.Errorf("near distance must be >= 0, got %d", c.NearDistance)
	}
	if c.StringLen < 1 {
		return fmt.Errorf("string length must be >= 1, got %d", c.StringLen)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// Run renders cfg.Samples random inputs sequentially and classifies exact
// and near collisions among the resulting perceptual hashes. Per-trial
// failures (renderer error, timeout, missing output, hashing error) are
// recorded and skipped; only a run with zero usable trials fails, with
// NoDataError.
func Run(cfg Config) (*Report, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.TempDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	slog.Info("Starting collision analysis",
		"samples", cfg.Samples, "generator", cfg.Generator,
		"near_distance", cfg.NearDistance, "temp_dir", cfg.TempDir)

	rng := newRNG(cfg.Seed)
	start := time.Now()

	trials := make([]trial, 0, cfg.Samples)
	for i := 0; i < cfg.Samples; i++ {
		input := randomString(rng, cfg.StringLen)
		trials = append(trials, runTrial(cfg, input))

		if progress := cfg.Samples / 20; progress > 0 && (i+1)%progress == 0 {
			slog.Info("Collision progress", "done", i+1, "total", cfg.Samples)
		}
	}

	report, err := analyze(cfg, trials, time.Since(start))
	if err != nil {
		return nil, err
	}

	slog.Info("Collision analysis complete",
		"processed", report.Processed, "failed", report.Failed,
		"phash_groups", len(report.PHash.Groups), "dhash_groups", len(report.DHash.Groups),
		"elapsed", report.Elapsed)

	return report, nil
}

func newRNG(s int64) *rand.Rand {
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

func randomString(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanumeric[rng.Intn(len(alphanumeric))]
	}
	return string(b)
}

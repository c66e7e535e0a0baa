package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/gradientaudit/internal/collide"
)

var (
	collSamples      int
	collGenerator    string
	collNearDistance int
	collTempDir      string
	collTimeout      time.Duration
	collStringLen    int
	collSeed         int64
	collOut          string
	collConfigPath   string
)

var collisionCmd = &cobra.Command{
	Use:   "collision",
	Short: "Measure perceptual-hash collisions of rendered images",
	Long: `Renders random strings through the external generator, computes two
perceptual hashes per image and classifies exact and near collisions among
them. Per-sample renderer failures are skipped; the batch always completes.`,
	RunE: runCollision,
}

func init() {
	collisionCmd.Flags().IntVar(&collSamples, "samples", 1000, "Number of random strings to render")
	collisionCmd.Flags().StringVar(&collGenerator, "generator", "", "Path to the renderer executable (required unless set in --config)")
	collisionCmd.Flags().IntVar(&collNearDistance, "near-distance", 4, "Maximum Hamming distance counted as a near collision")
	collisionCmd.Flags().StringVar(&collTempDir, "temp-dir", "", "Directory for temporary image files (default: system temp dir)")
	collisionCmd.Flags().DurationVar(&collTimeout, "timeout", 60*time.Second, "Per-invocation renderer timeout")
	collisionCmd.Flags().IntVar(&collStringLen, "string-len", 16, "Length of generated input strings")
	collisionCmd.Flags().Int64Var(&collSeed, "seed", 0, "Random seed (0 = time-based)")
	collisionCmd.Flags().StringVar(&collOut, "out", "analysis/collisions/visual_collision_summary.txt", "Report output path")
	collisionCmd.Flags().StringVar(&collConfigPath, "config", "", "Optional YAML config file")

	rootCmd.AddCommand(collisionCmd)
}

func runCollision(cmd *cobra.Command, args []string) error {
	cfg := collide.Config{
		Samples:      collSamples,
		Generator:    collGenerator,
		NearDistance: collNearDistance,
		TempDir:      collTempDir,
		Timeout:      collTimeout,
		StringLen:    collStringLen,
		Seed:         collSeed,
	}
	out := collOut

	if collConfigPath != "" {
		fileCfg, err := loadConfigFile(collConfigPath)
		if err != nil {
			return err
		}
		applyCollisionConfig(cmd, fileCfg, &cfg, &out)
	}

	start := time.Now()
	report, err := collide.Run(cfg)
	if err != nil {
		return fmt.Errorf("collision run: %w", err)
	}

	if err := report.WriteReport(out); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	slog.Info("Report written", "path", out, "elapsed", time.Since(start))
	fmt.Printf("Wrote %s (%d samples processed, %d failed)\n", out, report.Processed, report.Failed)
	return nil
}

// applyCollisionConfig merges file values into cfg for every flag the user
// did not set explicitly.
func applyCollisionConfig(cmd *cobra.Command, fc *fileConfig, cfg *collide.Config, out *string) {
	flags := cmd.Flags()
	if fc.Samples != nil && !flags.Changed("samples") {
		cfg.Samples = *fc.Samples
	}
	if fc.Generator != nil && !flags.Changed("generator") {
		cfg.Generator = *fc.Generator
	}
	if fc.NearDistance != nil && !flags.Changed("near-distance") {
		cfg.NearDistance = *fc.NearDistance
	}
	if fc.TempDir != nil && !flags.Changed("temp-dir") {
		cfg.TempDir = *fc.TempDir
	}
	if fc.TimeoutSec != nil && !flags.Changed("timeout") {
		cfg.Timeout = time.Duration(*fc.TimeoutSec) * time.Second
	}
	if fc.StringLen != nil && !flags.Changed("string-len") {
		cfg.StringLen = *fc.StringLen
	}
	if fc.Seed != nil && !flags.Changed("seed") {
		cfg.Seed = *fc.Seed
	}
	if fc.Out != nil && !flags.Changed("out") {
		*out = *fc.Out
	}
}

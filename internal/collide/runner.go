package collide

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/cwbudde/gradientaudit/internal/phash"
)

// runTrial renders one input to a uniquely named temp file and hashes the
// result. The file name is unique per trial so that retried or concurrent
// invocations can never clobber each other; the file does not outlive the
// trial on any path.
func runTrial(cfg Config, input string) trial {
	outPath := filepath.Join(cfg.TempDir, fmt.Sprintf("gradient_%s.png", uuid.New().String()))
	defer os.Remove(outPath)

	if err := invokeGenerator(cfg, input, outPath); err != nil {
		slog.Warn("Renderer invocation failed", "input", input, "error", err)
		return trial{input: input, err: err}
	}

	hashes, err := phash.FromFile(outPath)
	if err != nil {
		slog.Warn("Perceptual hashing failed", "input", input, "error", err)
		return trial{input: input, err: fmt.Errorf("hashing: %w", err)}
	}

	return trial{input: input, hashes: hashes}
}

// invokeGenerator runs the external renderer with a hard timeout. The
// renderer contract: write a valid image at outPath and exit 0 within the
// deadline. Non-zero exit, an expired deadline or a missing output file are
// all failures; stdout and stderr carry diagnostics only.
func invokeGenerator(cfg Config, input, outPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cfg.Generator, "--output", outPath, input)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("renderer timed out after %s", cfg.Timeout)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("renderer failed: %w (stderr: %s)", err, msg)
		}
		return fmt.Errorf("renderer failed: %w", err)
	}

	if _, err := os.Stat(outPath); err != nil {
		return fmt.Errorf("renderer exited 0 but produced no output file: %w", err)
	}
	return nil
}

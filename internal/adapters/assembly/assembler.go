// Package assembly hands rendered glyphs to the font assembly toolchain.
package assembly

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/moji/internal/core/domain"
	"go.trai.ch/moji/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Assembler = (*Runner)(nil)

// Runner implements ports.Assembler using os/exec. The configured command
// receives the manifest path as its last argument and is expected to write
// the font file named in the config.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Assemble writes the manifest and invokes the assembly command.
func (r *Runner) Assemble(ctx context.Context, cfg domain.AssemblerConfig, manifest domain.Manifest, manifestPath string) (string, error) {
	if err := writeManifest(manifestPath, manifest); err != nil {
		return "", err
	}
	if len(cfg.Command) == 0 {
		// No toolchain configured. The manifest itself is the handoff.
		r.logger.Info("no assembler configured, stopping after manifest", "manifest", manifestPath)
		return manifestPath, nil
	}

	name := cfg.Command[0]
	args := make([]string, 0, len(cfg.Command))
	args = append(args, cfg.Command[1:]...)
	args = append(args, manifestPath)

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // user provided command
	cmd.Dir = filepath.Dir(manifestPath)
	cmd.Stdout = &logWriter{logger: r.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: r.logger, level: "error"}

	r.logger.Info("running assembler", "command", strings.Join(cfg.Command, " "))

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.Wrap(domain.ErrAssemblyFailure, err.Error())
		return "", zerr.With(zerr.With(wrapped, "command", name), "exit_code", exitCode)
	}

	return cfg.Output, nil
}

func writeManifest(path string, manifest domain.Manifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal manifest")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for manifest")
	}
	//nolint:gosec // Path is derived from the build dir
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write manifest")
	}
	return nil
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}

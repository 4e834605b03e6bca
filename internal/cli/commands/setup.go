// Package commands holds the cobra subcommands of sparsecalc.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsecalc/internal/cli/config"
	"github.com/katalvlaran/sparsecalc/internal/cli/output"
	"github.com/katalvlaran/sparsecalc/matrix"
	"github.com/katalvlaran/sparsecalc/triplet"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext collects config, logger and renderer for cmd.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	return &CommandContext{
		Cfg:      config.GetConfig(ctx),
		Logger:   config.GetLogger(ctx),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ModeAuto),
	}
}

// ResolveInput returns path as given when it exists, otherwise path joined
// onto the configured directory.
func (c *CommandContext) ResolveInput(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return filepath.Join(c.Cfg.Dir, path)
}

// OutputPath is the configured output file, resolved against the directory.
func (c *CommandContext) OutputPath() string {
	if filepath.IsAbs(c.Cfg.OutputFile) {
		return c.Cfg.OutputFile
	}
	return filepath.Join(c.Cfg.Dir, c.Cfg.OutputFile)
}

// Load parses one input file and reports its skipped lines.
func (c *CommandContext) Load(path string) (*matrix.Matrix, error) {
	full := c.ResolveInput(path)
	m, rep, err := triplet.ParseFile(full, c.Cfg.ParseOptions(triplet.WithLogger(c.Logger))...)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	c.Renderer.Diagnostics(path, rep)
	c.Logger.Debug("matrix loaded", slog.String("file", full), slog.Int("nnz", m.NNZ()), slog.Int("lines", rep.Lines))

	return m, nil
}

// Compute applies op honoring convention, workers and prune_zeros.
func (c *CommandContext) Compute(op matrix.Op, a, b *matrix.Matrix) (*matrix.Matrix, error) {
	res, err := matrix.Apply(op, a, b, c.Cfg.MulOptions()...)
	if err != nil {
		return nil, err
	}
	if c.Cfg.PruneZeros {
		res = res.Compact()
	}
	return res, nil
}

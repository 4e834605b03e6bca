package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsecalc/matrix"
	"github.com/katalvlaran/sparsecalc/triplet"
)

// defaultDebounce coalesces the burst of events an editor save produces.
const defaultDebounce = 100 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	var opName string
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch <a> <b>",
		Short: "Recompute an operation whenever an input file changes",
		Long: `Print the result of --op over the two files, then print it again every
time either file is written. Runs until interrupted.`,
		Example: `  sparsecalc watch a.txt b.txt --op mul`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := matrix.ParseOp(opName)
			if err != nil {
				return err
			}
			return Watch(cmd.Context(), NewCommandContext(cmd), op, args[0], args[1], debounce)
		},
	}

	cmd.Flags().StringVar(&opName, "op", "add", "Operation: add, sub or mul")
	cmd.Flags().DurationVar(&debounce, "debounce", defaultDebounce, "Quiet period before recomputing")
	_ = cmd.RegisterFlagCompletionFunc("op", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"add", "sub", "mul"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// Watch prints op(a, b) and recomputes it after every change to a or b until
// ctx is done. Load failures during a recompute are reported and skipped.
func Watch(ctx context.Context, cmdCtx *CommandContext, op matrix.Op, pathA, pathB string, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	fullA, err := filepath.Abs(cmdCtx.ResolveInput(pathA))
	if err != nil {
		return err
	}
	fullB, err := filepath.Abs(cmdCtx.ResolveInput(pathB))
	if err != nil {
		return err
	}

	if err := recompute(cmdCtx, op, fullA, fullB); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directories: editors often replace files instead of writing them.
	for _, dir := range uniqueDirs(fullA, fullB) {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	cmdCtx.Logger.Info("watching", slog.String("a", fullA), slog.String("b", fullB), slog.String("op", op.String()))

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name := filepath.Clean(event.Name)
			if name != fullA && name != fullB {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			if err := recompute(cmdCtx, op, fullA, fullB); err != nil {
				cmdCtx.Renderer.Warn("%v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmdCtx.Logger.Warn("watcher error", slog.Any("error", err))
		}
	}
}

// recompute loads both files and prints op over them.
func recompute(cmdCtx *CommandContext, op matrix.Op, pathA, pathB string) error {
	a, err := cmdCtx.Load(pathA)
	if err != nil {
		return err
	}
	b, err := cmdCtx.Load(pathB)
	if err != nil {
		return err
	}
	res, err := cmdCtx.Compute(op, a, b)
	if err != nil {
		return err
	}

	return cmdCtx.Renderer.Section(triplet.Section{Title: op.Title(), Matrix: res})
}

func uniqueDirs(paths ...string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, p := range paths {
		d := filepath.Dir(p)
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}

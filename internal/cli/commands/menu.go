package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsecalc/internal/session"
)

// NewMenuCommand creates the menu command.
func NewMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Pick two matrix files and operate on them interactively",
		Long: `Start the interactive menu.

The candidate files in --dir with the configured extension are listed; choose
two by number, then add, subtract or multiply them as often as you like. On
exit everything shown is appended to the output file.

Running sparsecalc without a subcommand starts the menu as well.`,
		Example: `  # Menu over the current directory
  sparsecalc

  # Menu over ./data, multiplying with 4 workers
  sparsecalc menu --dir data --workers 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunMenu(cmd)
		},
	}
}

// RunMenu runs one interactive session on cmd's input and output.
func RunMenu(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize prompt: %w", err)
	}
	defer func() { _ = rl.Close() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	// Unblock a pending Readline when the command is cancelled.
	stop := context.AfterFunc(ctx, func() { _ = rl.Close() })
	defer stop()

	s := session.New(rl, session.Options{
		Dir:        cfg.Dir,
		Extension:  cfg.Extension,
		OutputFile: cfg.OutputFile,
		PruneZeros: cfg.PruneZeros,
		Mul:        cfg.MulOptions(),
		Parse:      cfg.ParseOptions(),
		Out:        cmd.OutOrStdout(),
		Logger:     cmdCtx.Logger,
	})

	return s.Run(ctx)
}

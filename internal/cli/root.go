// Package cli provides the command-line interface for sparsecalc.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsecalc/internal/cli/commands"
	"github.com/katalvlaran/sparsecalc/internal/cli/config"
	"github.com/katalvlaran/sparsecalc/matrix"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "sparsecalc",
		Short: "sparsecalc - sparse integer matrix calculator",
		Long: `sparsecalc reads sparse integer matrices stored as "row col value" lines,
adds, subtracts and multiplies them, and appends the results to an output file.

Run without a subcommand to start the interactive menu.`,
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, used, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := cfg.NewLogger(cmd.ErrOrStderr())
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = config.WithConfig(ctx, cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			if used != "" {
				logger.Debug("config loaded", slog.String("file", used))
			}
			if cfg.Verbose && used != "" {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Using config file: %s\n", used)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return commands.RunMenu(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./sparsecalc.yaml)")
	pf.String("dir", "", "Directory holding the matrix files")
	pf.String("extension", "", "Input file extension (default .txt)")
	pf.StringP("output", "o", "", "Output file results are appended to (default output.txt)")
	pf.String("convention", "", "Multiply column convention (standard|row-keyed)")
	pf.Int("workers", 0, "Goroutines used by multiply")
	pf.Bool("prune-zeros", false, "Drop explicit zeros from add/subtract results")
	pf.Bool("mmap", false, "Read input files through a memory map")
	pf.String("log-level", "", "Log level (debug|info|warn|error)")
	pf.String("log-format", "", "Log format (text|json)")
	pf.BoolP("verbose", "v", false, "Verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("convention", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{matrix.Standard.String(), matrix.RowKeyed.String()}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewMenuCommand())
	for _, op := range matrix.Ops {
		rootCmd.AddCommand(commands.NewComputeCommand(op))
	}
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(commands.NewWatchCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

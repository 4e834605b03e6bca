package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsecalc/internal/catalog"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List candidate matrix files",
		Long: `List the files in --dir that end in the configured extension, numbered
the way the interactive menu offers them. The output file is never listed.`,
		Example: `  sparsecalc list
  sparsecalc list --dir data --extension .mtx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			cfg := cmdCtx.Cfg

			files, err := catalog.List(cfg.Dir, cfg.Extension, filepath.Base(cfg.OutputFile))
			if err != nil {
				return err
			}
			if len(files) == 0 {
				cmdCtx.Renderer.Warn("no %s files in %s", cfg.Extension, cfg.Dir)
				return nil
			}
			cmdCtx.Renderer.List("Available matrix files:", files)
			return nil
		},
	}
}

package commands

import (
	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "show <file>...",
		Short: "Print matrix files as tables",
		Long: `Parse each file and print its entries as a Row/Col/Value table.

Skipped lines are reported as warnings on stderr. Use --plain to print the
entries as "row col value" lines instead.`,
		Example: `  sparsecalc show a.txt
  sparsecalc show a.txt b.txt --plain`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			for _, p := range args {
				m, err := cmdCtx.Load(p)
				if err != nil {
					return err
				}
				if plain {
					if _, err := cmd.OutOrStdout().Write([]byte(m.String())); err != nil {
						return err
					}
					continue
				}
				cmdCtx.Renderer.Table(p, m)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print row col value lines instead of a table")

	return cmd
}

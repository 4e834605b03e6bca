package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsecalc/matrix"
	"github.com/katalvlaran/sparsecalc/triplet"
)

// ComputeOptions holds options for the add, sub and mul commands.
type ComputeOptions struct {
	Append bool // also append inputs and result to the output file
	Table  bool // render the result as a table
}

// NewComputeCommand creates the non-interactive command for op.
func NewComputeCommand(op matrix.Op) *cobra.Command {
	opts := &ComputeOptions{}

	var use, short string
	var aliases []string
	switch op {
	case matrix.OpAdd:
		use, short, aliases = "add <a> <b>", "Add two matrix files", []string{"sum"}
	case matrix.OpSubtract:
		use, short, aliases = "sub <a> <b>", "Subtract matrix b from matrix a", []string{"subtract", "diff"}
	default:
		use, short, aliases = "mul <a> <b>", "Multiply matrix a by matrix b", []string{"multiply", "product"}
	}

	cmd := &cobra.Command{
		Use:     use,
		Aliases: aliases,
		Short:   short,
		Long: short + `.

The result is printed as "row col value" lines in ascending row and column
order. With --append the two inputs and the result are also appended to the
output file, exactly as the interactive menu records them.`,
		Example: fmt.Sprintf(`  sparsecalc %[1]s a.txt b.txt
  sparsecalc %[1]s a.txt b.txt --append --output results.txt`, op),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd, op, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Append, "append", false, "Append inputs and result to the output file")
	cmd.Flags().BoolVar(&opts.Table, "table", false, "Render the result as a table")

	return cmd
}

func runCompute(cmd *cobra.Command, op matrix.Op, pathA, pathB string, opts *ComputeOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

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

	sec := triplet.Section{Title: op.Title(), Matrix: res}
	if opts.Table {
		r.Table(sec.Title, res)
	} else if err := r.Section(sec); err != nil {
		return err
	}

	if !opts.Append {
		return nil
	}

	var doc triplet.Document
	doc.Add(fmt.Sprintf("Matrix 1 (%s)", filepath.Base(pathA)), a)
	doc.Add(fmt.Sprintf("Matrix 2 (%s)", filepath.Base(pathB)), b)
	doc.Add(sec.Title, sec.Matrix)
	out := cmdCtx.OutputPath()
	if err := triplet.AppendFile(out, doc.String()); err != nil {
		return fmt.Errorf("failed to save output: %w", err)
	}
	r.Success("Output saved to %s", out)

	return nil
}

package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecalc/internal/cli"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := cli.NewRootCmd()

	for _, name := range []string{"version", "menu", "add", "sub", "mul", "show", "list", "generate", "watch"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}

	for _, flag := range []string{"config", "dir", "extension", "output", "convention", "workers", "prune-zeros", "mmap", "log-level", "log-format", "verbose"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRootCommand_FlagsReachCommands(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("0 0 2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("0 0 3\n0 7 5\n"), 0o644))

	var out bytes.Buffer
	root := cli.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"mul", "a.txt", "b.txt", "--convention", "row-keyed", "--workers", "2", "--mmap"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "Multiplication Result:\n0 0 6\n", out.String())
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	root := cli.NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"list", "--workers", "0"})

	require.Error(t, root.Execute())
}

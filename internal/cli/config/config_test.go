package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecalc/internal/cli/config"
	"github.com/katalvlaran/sparsecalc/matrix"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("dir", "", "")
	fs.String("output", "", "")
	fs.String("convention", "", "")
	fs.Int("workers", 0, "")
	fs.Bool("prune-zeros", false, "")
	fs.String("log-level", "", "")
	return fs
}

// chdir switches into a fresh directory so stray config files are not picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)

	cfg, used, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, config.Defaults(), cfg)
}

func TestLoad_Precedence(t *testing.T) {
	dir := chdir(t)
	yaml := "dir: from-file\nworkers: 2\nconvention: row-keyed\nextension: dat\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sparsecalc.yaml"), []byte(yaml), 0o644))
	t.Setenv("SPARSECALC_WORKERS", "3")
	t.Setenv("SPARSECALC_OUTPUT_FILE", "env.txt")

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--workers=4", "--prune-zeros"}))

	cfg, used, err := config.Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(".", "sparsecalc.yaml"), used)
	assert.Equal(t, "from-file", cfg.Dir)
	assert.Equal(t, ".dat", cfg.Extension)
	assert.Equal(t, "row-keyed", cfg.Convention)
	assert.Equal(t, "env.txt", cfg.OutputFile)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.PruneZeros)
}

func TestLoad_UnchangedFlagsIgnored(t *testing.T) {
	chdir(t)
	t.Setenv("SPARSECALC_DIR", "env-dir")

	fs := newFlags()
	require.NoError(t, fs.Parse(nil))

	cfg, _, err := config.Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "env-dir", cfg.Dir)
	assert.Equal(t, config.DefaultWorkers, cfg.Workers)
}

func TestLoad_OutputFlagMapsToOutputFile(t *testing.T) {
	chdir(t)
	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--output", "res.txt"}))

	cfg, _, err := config.Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "res.txt", cfg.OutputFile)
}

func TestLoad_Invalid(t *testing.T) {
	chdir(t)

	_, _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)

	for flag, val := range map[string]string{"workers": "0", "convention": "diagonal", "log-level": "loud"} {
		fs := newFlags()
		require.NoError(t, fs.Parse([]string{"--" + flag + "=" + val}))
		_, _, err := config.Load("", fs)
		require.Error(t, err, flag)
	}
}

func TestValidate(t *testing.T) {
	cfg := config.Defaults()
	require.NoError(t, cfg.Validate())

	cfg.Extension = ""
	require.Error(t, cfg.Validate())

	cfg = config.Defaults()
	cfg.LogFormat = "xml"
	require.Error(t, cfg.Validate())
}

func TestMulOptions(t *testing.T) {
	cfg := config.Defaults()
	cfg.Convention = "row-keyed"
	cfg.Workers = 3

	a := matrix.New(matrix.Entry{Row: 0, Col: 0, Value: 2})
	b := matrix.New(matrix.Entry{Row: 0, Col: 0, Value: 3}, matrix.Entry{Row: 0, Col: 7, Value: 5})
	got := matrix.Multiply(a, b, cfg.MulOptions()...)
	assert.True(t, got.Equal(matrix.New(matrix.Entry{Row: 0, Col: 0, Value: 6})))
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, config.Defaults(), config.GetConfig(ctx))
	assert.NotNil(t, config.GetLogger(ctx))

	cfg := config.Defaults()
	cfg.Dir = "x"
	ctx = config.WithConfig(ctx, cfg)
	assert.Same(t, cfg, config.GetConfig(ctx))

	l := cfg.NewLogger(os.Stderr)
	ctx = config.WithLogger(ctx, l)
	assert.Same(t, l, config.GetLogger(ctx))
}

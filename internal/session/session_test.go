package session_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecalc/internal/session"
	"github.com/katalvlaran/sparsecalc/internal/testutil"
	"github.com/katalvlaran/sparsecalc/matrix"
)

// script is a Prompter that replays fixed answers, then reports end.
type script struct {
	lines   []string
	end     error
	prompts []string
}

func (s *script) SetPrompt(p string) { s.prompts = append(s.prompts, p) }

func (s *script) Readline() (string, error) {
	if len(s.lines) == 0 {
		if s.end != nil {
			return "", s.end
		}
		return "", io.EOF
	}
	l := s.lines[0]
	s.lines = s.lines[1:]

	return l, nil
}

// fixture writes the reference operands and returns the directory.
func fixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("0 0 1\n0 1 2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("0 0 3\n1 1 4\n"), 0o644))

	return dir
}

func newSession(t *testing.T, dir string, in session.Prompter, out io.Writer) *session.Session {
	t.Helper()
	return session.New(in, session.Options{
		Dir:        dir,
		Extension:  ".txt",
		OutputFile: "output.txt",
		Out:        out,
		Logger:     testutil.NewTestLogger(t),
	})
}

func readOutput(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "output.txt"))
	require.NoError(t, err)

	return string(data)
}

// TestRun_FullMenu adds and multiplies, then exits.
func TestRun_FullMenu(t *testing.T) {
	dir := fixture(t)
	var out bytes.Buffer
	in := &script{lines: []string{"1", "2", "1", "3", "4"}}

	s := newSession(t, dir, in, &out)
	require.NoError(t, s.Run(context.Background()))

	want := "Matrix 1 (a.txt):\n0 0 1\n0 1 2\n" +
		"\nMatrix 2 (b.txt):\n0 0 3\n1 1 4\n" +
		"\nAddition Result:\n0 0 4\n0 1 2\n1 1 4\n" +
		"\nMultiplication Result:\n0 0 3\n0 1 8\n"
	assert.Equal(t, want, readOutput(t, dir))

	assert.Contains(t, out.String(), "1. a.txt\n2. b.txt\n")
	assert.Contains(t, out.String(), "Exiting...")
	assert.Contains(t, out.String(), "Output saved to output.txt")
	assert.NotEqual(t, "", s.ID.String())
	assert.True(t, s.Last().Equal(matrix.New(
		matrix.Entry{Row: 0, Col: 0, Value: 3},
		matrix.Entry{Row: 0, Col: 1, Value: 8},
	)))
}

// TestRun_RepromptsOnBadInput recovers from non-numbers and out-of-range picks.
func TestRun_RepromptsOnBadInput(t *testing.T) {
	dir := fixture(t)
	var out bytes.Buffer
	in := &script{lines: []string{"x", "9", "1", "0", "2", "7", "abc", "2", "4"}}

	require.NoError(t, newSession(t, dir, in, &out).Run(context.Background()))

	assert.Contains(t, out.String(), "Invalid input")
	assert.Contains(t, out.String(), "invalid selection")
	assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("Invalid choice. Please choose a number from 1 to 4.")))
	assert.Contains(t, readOutput(t, dir), "\nSubtraction Result:\n0 0 -2\n0 1 2\n1 1 -4\n")
}

// TestRun_EOFFlushes saves what was computed when input ends mid-menu.
func TestRun_EOFFlushes(t *testing.T) {
	dir := fixture(t)
	in := &script{lines: []string{"1", "2", "1"}}

	require.NoError(t, newSession(t, dir, in, nil).Run(context.Background()))
	assert.Contains(t, readOutput(t, dir), "Addition Result:")
}

// TestRun_InterruptBeforeSelection writes nothing.
func TestRun_InterruptBeforeSelection(t *testing.T) {
	dir := fixture(t)
	in := &script{end: readline.ErrInterrupt}

	require.NoError(t, newSession(t, dir, in, nil).Run(context.Background()))
	_, err := os.Stat(filepath.Join(dir, "output.txt"))
	assert.True(t, os.IsNotExist(err))
}

// TestRun_AppendsAcrossRuns never truncates the output file.
func TestRun_AppendsAcrossRuns(t *testing.T) {
	dir := fixture(t)
	for range 2 {
		in := &script{lines: []string{"1", "1", "4"}}
		require.NoError(t, newSession(t, dir, in, nil).Run(context.Background()))
	}

	got := readOutput(t, dir)
	assert.Equal(t, 2, bytes.Count([]byte(got), []byte("Matrix 1 (a.txt):")))

	// output.txt is never offered as an input on the second run.
	in := &script{lines: []string{"3"}}
	var out bytes.Buffer
	require.NoError(t, newSession(t, dir, in, &out).Run(context.Background()))
	assert.NotContains(t, out.String(), "output.txt\n")
}

// TestRun_Cancelled stops at the next prompt.
func TestRun_Cancelled(t *testing.T) {
	dir := fixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := &script{lines: []string{"1", "2"}}
	require.NoError(t, newSession(t, dir, in, nil).Run(ctx))
	assert.Len(t, in.lines, 2, "no input consumed after cancellation")
}

// TestRun_ReadError is returned after flushing.
func TestRun_ReadError(t *testing.T) {
	dir := fixture(t)
	boom := errors.New("tty gone")
	in := &script{lines: []string{"1", "2"}, end: boom}

	err := newSession(t, dir, in, nil).Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, readOutput(t, dir), "Matrix 2 (b.txt):")
}

// TestRun_NoFiles reports the empty directory.
func TestRun_NoFiles(t *testing.T) {
	err := newSession(t, t.TempDir(), &script{}, nil).Run(context.Background())
	require.ErrorIs(t, err, session.ErrNoFiles)
}

// TestRun_PruneZerosAndConvention threads options into the operations. b holds
// column 7 with no matching row, so RowKeyed multiply drops it while
// subtraction keeps it.
func TestRun_PruneZerosAndConvention(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("0 0 2\n0 1 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("0 0 2\n1 1 1\n0 7 3\n"), 0o644))

	var out bytes.Buffer
	s := session.New(&script{lines: []string{"1", "2", "2", "3", "4"}}, session.Options{
		Dir:        dir,
		Extension:  ".txt",
		OutputFile: filepath.Join(dir, "result.log"),
		PruneZeros: true,
		Mul:        []matrix.MulOption{matrix.WithConvention(matrix.RowKeyed)},
		Out:        &out,
	})
	require.NoError(t, s.Run(context.Background()))

	data, err := os.ReadFile(filepath.Join(dir, "result.log"))
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "\nSubtraction Result:\n0 1 1\n0 7 -3\n1 1 -1\n")
	assert.Contains(t, text, "\nMultiplication Result:\n0 0 4\n0 1 1\n")
	assert.NotContains(t, text, "0 7 6", "Standard convention would keep column 7")

	require.NotNil(t, s.Last())
	assert.Equal(t, []matrix.Entry{
		{Row: 0, Col: 0, Value: 4},
		{Row: 0, Col: 1, Value: 1},
	}, s.Last().Entries())
}

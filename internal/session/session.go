// Package session runs the interactive menu: pick two matrix files, apply
// operations until exit, then append everything shown to the output file.
//
// All state lives on a Session value; nothing is global. Input arrives through
// a Prompter so the loop can be driven by readline in a terminal or by a
// scripted fake in tests.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/katalvlaran/sparsecalc/internal/catalog"
	"github.com/katalvlaran/sparsecalc/matrix"
	"github.com/katalvlaran/sparsecalc/triplet"
)

// ErrNoFiles is returned by Run when the directory holds no candidate files.
var ErrNoFiles = errors.New("session: no matrix files found")

var (
	// errQuit ends the loop without an error: EOF, interrupt or cancellation.
	errQuit = errors.New("session: quit")

	// errNotNumber marks input that is recoverable by prompting again.
	errNotNumber = errors.New("not a number")
)

// Menu choices.
const (
	choiceAdd = iota + 1
	choiceSubtract
	choiceMultiply
	choiceExit
)

// Prompter reads one line of user input. *readline.Instance satisfies it.
type Prompter interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Options configures a Session.
type Options struct {
	Dir        string             // directory scanned for inputs
	Extension  string             // input file suffix, e.g. ".txt"
	OutputFile string             // relative names are resolved against Dir
	PruneZeros bool               // drop explicit zeros from add/subtract results
	Mul        []matrix.MulOption // forwarded to Multiply
	Parse      []triplet.Option   // forwarded to ParseFile
	Out        io.Writer          // menu and results; io.Discard when nil
	Logger     *slog.Logger       // discard when nil
}

// Session is one run of the menu.
type Session struct {
	ID uuid.UUID

	opts   Options
	in     Prompter
	out    io.Writer
	log    *slog.Logger
	cat    *catalog.Catalog
	names  [2]string
	mats   [2]*matrix.Matrix
	doc    triplet.Document
	result *matrix.Matrix
}

// New returns a Session reading from in.
func New(in Prompter, opts Options) *Session {
	s := &Session{ID: uuid.New(), opts: opts, in: in, out: opts.Out, log: opts.Logger}
	if s.out == nil {
		s.out = io.Discard
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	if s.opts.Dir == "" {
		s.opts.Dir = "."
	}
	s.log = s.log.With(slog.String("session", s.ID.String()))

	return s
}

// OutputPath is the file the document is appended to.
func (s *Session) OutputPath() string {
	if filepath.IsAbs(s.opts.OutputFile) {
		return s.opts.OutputFile
	}

	return filepath.Join(s.opts.Dir, s.opts.OutputFile)
}

// Document returns the sections accumulated so far.
func (s *Session) Document() *triplet.Document { return &s.doc }

// Run drives the menu until the user exits, input ends or ctx is cancelled.
// Once both matrices are loaded the document is always flushed to the output
// file, whichever way the loop ended.
func (s *Session) Run(ctx context.Context) error {
	if err := s.selectFiles(ctx); err != nil {
		if errors.Is(err, errQuit) {
			return nil
		}
		return err
	}

	loopErr := s.operate(ctx)
	if errors.Is(loopErr, errQuit) {
		loopErr = nil
	}

	if err := s.flush(); err != nil {
		return errors.Join(loopErr, err)
	}

	return loopErr
}

// selectFiles lists the catalog, reads two picks and loads both matrices.
func (s *Session) selectFiles(ctx context.Context) error {
	cat, err := catalog.Load(s.opts.Dir, s.opts.Extension, filepath.Base(s.opts.OutputFile))
	if err != nil {
		return err
	}
	if cat.Len() == 0 {
		return fmt.Errorf("%w in %s (extension %q)", ErrNoFiles, s.opts.Dir, s.opts.Extension)
	}
	s.cat = cat

	s.printf("Available matrix files:\n")
	for i, name := range cat.Files {
		s.printf("%d. %s\n", i+1, name)
	}

	for i, ordinal := range []string{"first", "second"} {
		name, err := s.pickFile(ctx, ordinal)
		if err != nil {
			return err
		}
		s.names[i] = name
	}

	for i, name := range s.names {
		m, rep, err := triplet.ParseFile(cat.Path(name), s.opts.Parse...)
		if err != nil {
			return err
		}
		for _, d := range rep.Diagnostics {
			s.printf("warning: %s: %s\n", name, d)
		}
		s.mats[i] = m
		s.doc.Add(fmt.Sprintf("Matrix %d (%s)", i+1, name), m)
		s.log.Info("matrix loaded", slog.String("file", name), slog.Int("nnz", m.NNZ()), slog.Int("skipped", len(rep.Diagnostics)))
	}

	return nil
}

// pickFile prompts until a valid catalog choice is entered.
func (s *Session) pickFile(ctx context.Context, ordinal string) (string, error) {
	prompt := fmt.Sprintf("Choose the %s matrix file (Enter the corresponding number): ", ordinal)
	for {
		n, err := s.readInt(ctx, prompt)
		if errors.Is(err, errNotNumber) {
			s.printf("Invalid input: %v\n", err)
			continue
		}
		if err != nil {
			return "", err
		}
		name, err := s.cat.Pick(n)
		if err != nil {
			s.printf("%v\n", err)
			continue
		}

		return name, nil
	}
}

// operate runs the operation menu.
func (s *Session) operate(ctx context.Context) error {
	for {
		s.printf("\nChoose an operation:\n")
		s.printf("1. Add matrix 1 and matrix 2\n")
		s.printf("2. Subtract matrix 2 from matrix 1\n")
		s.printf("3. Multiply matrix 1 by matrix 2\n")
		s.printf("4. Exit\n")

		choice, err := s.readInt(ctx, "Enter your choice: ")
		if err != nil && !errors.Is(err, errNotNumber) {
			return err
		}

		var op matrix.Op
		switch {
		case err != nil:
		case choice == choiceAdd:
			op = matrix.OpAdd
		case choice == choiceSubtract:
			op = matrix.OpSubtract
		case choice == choiceMultiply:
			op = matrix.OpMultiply
		case choice == choiceExit:
			s.printf("Exiting...\n")
			return nil
		}
		if op == 0 {
			s.printf("Invalid choice. Please choose a number from 1 to 4.\n")
			continue
		}

		if err := s.apply(op); err != nil {
			return err
		}
	}
}

// apply computes op over the loaded matrices, prints it and records it.
func (s *Session) apply(op matrix.Op) error {
	res, err := matrix.Apply(op, s.mats[0], s.mats[1], s.opts.Mul...)
	if err != nil {
		return err
	}
	if s.opts.PruneZeros {
		res = res.Compact()
	}
	s.result = res

	sec := triplet.Section{Title: op.Title(), Matrix: res}
	if err := triplet.WriteSection(s.out, sec); err != nil {
		return fmt.Errorf("session: print %s: %w", op, err)
	}
	s.doc.Add(sec.Title, sec.Matrix)
	s.log.Debug("operation applied", slog.String("op", op.String()), slog.Int("nnz", res.NNZ()))

	return nil
}

// Last returns the most recent operation result, or nil.
func (s *Session) Last() *matrix.Matrix { return s.result }

// flush appends the document to the output file.
func (s *Session) flush() error {
	if s.doc.Len() == 0 {
		return nil
	}
	path := s.OutputPath()
	if err := triplet.AppendFile(path, s.doc.String()); err != nil {
		return fmt.Errorf("session: save output: %w", err)
	}
	s.printf("Output saved to %s\n", s.opts.OutputFile)
	s.log.Info("output saved", slog.String("path", path), slog.Int("sections", s.doc.Len()))

	return nil
}

// readInt reads one line and parses it as a decimal integer. EOF, interrupt
// and cancellation map to errQuit.
func (s *Session) readInt(ctx context.Context, prompt string) (int, error) {
	if ctx.Err() != nil {
		return 0, errQuit
	}
	s.in.SetPrompt(prompt)
	line, err := s.in.Readline()
	if ctx.Err() != nil || errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		return 0, errQuit
	}
	if err != nil {
		return 0, fmt.Errorf("session: read input: %w", err)
	}

	line = strings.TrimSpace(line)
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", line, errNotNumber)
	}

	return n, nil
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// Package output renders command results for humans. On a terminal headers
// are styled with lipgloss; anywhere else output is plain text that parses
// back as triplet input.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/katalvlaran/sparsecalc/matrix"
	"github.com/katalvlaran/sparsecalc/triplet"
)

// Mode selects plain or styled rendering.
type Mode string

// Output modes.
const (
	ModeAuto   Mode = "auto"   // styled on a TTY, plain otherwise
	ModePlain  Mode = "plain"  // never styled
	ModeStyled Mode = "styled" // always styled
)

// Styles holds the lipgloss styles used for styled output.
type Styles struct {
	Header  lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// Renderer writes results to out and diagnostics to errOut.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	styled bool
	Styles Styles
}

// NewRenderer returns a Renderer for mode.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	styled := mode == ModeStyled || (mode != ModePlain && isTerminal(out))

	lg := lipgloss.NewRenderer(out)
	if !styled {
		lg.SetColorProfile(termenv.Ascii)
	} else if mode == ModeStyled && !isTerminal(out) {
		lg.SetColorProfile(termenv.ANSI256)
	}

	return &Renderer{
		out:    out,
		errOut: errOut,
		styled: styled,
		Styles: Styles{
			Header:  lg.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			Muted:   lg.NewStyle().Faint(true),
			Warning: lg.NewStyle().Foreground(lipgloss.Color("11")),
			Success: lg.NewStyle().Foreground(lipgloss.Color("10")),
		},
	}
}

// isTerminal reports whether w is a terminal file descriptor.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Styled reports whether styling is active.
func (r *Renderer) Styled() bool { return r.styled }

// Out returns the result writer.
func (r *Renderer) Out() io.Writer { return r.out }

// Section writes a titled matrix. Plain output is byte-identical to
// triplet.WriteSection.
func (r *Renderer) Section(s triplet.Section) error {
	if !r.styled {
		return triplet.WriteSection(r.out, s)
	}
	_, _ = fmt.Fprintln(r.out, r.Styles.Header.Render(s.Title+":"))
	for e := range s.Matrix.All() {
		if _, err := fmt.Fprintln(r.out, e.String()); err != nil {
			return err
		}
	}
	if s.Matrix.IsEmpty() {
		_, _ = fmt.Fprintln(r.out, r.Styles.Muted.Render("(empty)"))
	}
	return nil
}

// Table writes m as a Row/Col/Value table followed by a count line.
func (r *Renderer) Table(title string, m *matrix.Matrix) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
	}
	t.AppendHeader(table.Row{"Row", "Col", "Value"})
	for e := range m.All() {
		t.AppendRow(table.Row{e.Row, e.Col, e.Value})
	}
	t.AppendFooter(table.Row{"", "nnz", m.NNZ()})
	t.Render()
}

// List writes a numbered list the way the menu shows candidate files.
func (r *Renderer) List(title string, items []string) {
	r.Header(title)
	for i, it := range items {
		_, _ = fmt.Fprintf(r.out, "%d. %s\n", i+1, it)
	}
}

// Header writes a single header line.
func (r *Renderer) Header(title string) {
	_, _ = fmt.Fprintln(r.out, r.Styles.Header.Render(title))
}

// Warn writes a warning to errOut.
func (r *Renderer) Warn(format string, args ...any) {
	_, _ = fmt.Fprintln(r.errOut, r.Styles.Warning.Render("warning: "+fmt.Sprintf(format, args...)))
}

// Success writes a confirmation to errOut so stdout stays parseable.
func (r *Renderer) Success(format string, args ...any) {
	_, _ = fmt.Fprintln(r.errOut, r.Styles.Success.Render(fmt.Sprintf(format, args...)))
}

// Diagnostics reports skipped input lines of file.
func (r *Renderer) Diagnostics(file string, rep *triplet.Report) {
	if rep == nil {
		return
	}
	for _, d := range rep.Diagnostics {
		r.Warn("%s: %s", file, d)
	}
}

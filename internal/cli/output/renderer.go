// Package output renders command results in terminal, markdown, table, and
// JSON formats. Commands write through a Renderer so the same data can serve
// humans on a TTY and scripts reading a pipe.
package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	// ModeAuto picks ModeText on a TTY and ModeMarkdown when piped.
	ModeAuto Mode = "auto"
	// ModeText is the canonical plain standings lines.
	ModeText Mode = "text"
	// ModeMarkdown is an agent/script friendly markdown table.
	ModeMarkdown Mode = "markdown"
	// ModeJSON is machine-readable JSON.
	ModeJSON Mode = "json"
	// ModeTable is a styled terminal table.
	ModeTable Mode = "table"
)

// Renderer writes formatted output to an out and error stream.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles *Styles
}

// NewRenderer creates a renderer for the given streams and mode. An empty or
// unknown mode falls back to ModeText, the canonical standings lines.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeAuto, ModeMarkdown, ModeJSON, ModeTable:
	default:
		mode = ModeText
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styles: DefaultStyles(),
	}
}

// EffectiveMode resolves ModeAuto against the output stream: text when the
// stream is a terminal, markdown otherwise.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeText
	}
	return ModeMarkdown
}

// Writer returns the underlying output stream.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the underlying error stream.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// Styles returns the lipgloss styles used for styled terminal output.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Println writes a line to the output stream.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to the output stream.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Errorf writes formatted text to the error stream.
func (r *Renderer) Errorf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.errOut, format, a...)
}

// Package ui renders the console output of the tool.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for dark terminal backgrounds
const (
	ColorPrimary = lipgloss.Color("#7C3AED")
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorSuccess = lipgloss.Color("#10B981")
)

// Styles bound to one output. When the output is not a terminal every
// style renders plain text.
type Styles struct {
	Title   lipgloss.Style
	Index   lipgloss.Style
	Success lipgloss.Style
}

// Printer writes styled listings and messages to an output
type Printer struct {
	out    io.Writer
	styles Styles
}

func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out: out,
		styles: Styles{
			Title:   r.NewStyle().Bold(true).Foreground(ColorPrimary),
			Index:   r.NewStyle().Foreground(ColorMuted),
			Success: r.NewStyle().Foreground(ColorSuccess),
		},
	}
}

// Writer returns the underlying output
func (p *Printer) Writer() io.Writer {
	return p.out
}

func (p *Printer) Title(text string) {
	fmt.Fprintln(p.out, p.styles.Title.Render(text))
}

// Prints items as a numbered list starting at 0, "0.) name"
func (p *Printer) List(items []string) {
	for i, item := range items {
		fmt.Fprintf(p.out, "%s %s\n", p.styles.Index.Render(fmt.Sprintf("%d.)", i)), item)
	}
}

func (p *Printer) Success(text string) {
	fmt.Fprintln(p.out, p.styles.Success.Render(text))
}

func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}

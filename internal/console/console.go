// Package console prints park announcements, one per line.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Options configure a Printer.
type Options struct {
	// Color enables styling. Writers that are not terminals are printed
	// plain either way.
	Color bool
}

// Printer writes announcements to an io.Writer. It implements
// domain.Announcer.
type Printer struct {
	w     io.Writer
	style lipgloss.Style
	err   error
}

// New returns a Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	r := lipgloss.NewRenderer(w)
	style := r.NewStyle()
	if opts.Color {
		style = style.Foreground(lipgloss.AdaptiveColor{Light: "#5A3E9B", Dark: "#E3D7FF"})
	}

	return &Printer{w: w, style: style}
}

// Announce prints msg. The first write error is kept and later calls are
// dropped; see Err.
func (p *Printer) Announce(msg string) {
	if p.err != nil {
		return
	}

	if _, err := fmt.Fprintln(p.w, p.style.Render(msg)); err != nil {
		p.err = fmt.Errorf("could not write announcement: %w", err)
	}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}

// Package output builds termenv outputs with a consistent color profile.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/py2sec/internal/ui/style"
)

// ColorProfile returns Ascii when NO_COLOR is set and the detected
// terminal profile otherwise.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output writing to w, or to stderr when w is nil.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// Painter colors strings for a single output.
type Painter struct {
	out *termenv.Output
}

// NewPainter returns a Painter bound to out.
func NewPainter(out *termenv.Output) Painter {
	return Painter{out: out}
}

// Color renders s in the given color.
func (p Painter) Color(s string, c lipgloss.Color) string {
	return p.out.String(s).Foreground(p.out.Color(string(c))).String()
}

// Bold renders s bold in the given color.
func (p Painter) Bold(s string, c lipgloss.Color) string {
	return p.out.String(s).Foreground(p.out.Color(string(c))).Bold().String()
}

// Mark renders the icon of m in its color.
func (p Painter) Mark(m style.Mark) string {
	return p.Color(m.Icon, m.Color)
}

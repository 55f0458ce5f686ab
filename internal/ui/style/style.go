// Package style holds the colors and icons shared by every terminal writer.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Muted  = lipgloss.Color("#667085")
	Accent = lipgloss.Color("#3776AB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
	Dash    = "-"
	Equal   = "="
)

// Mark pairs an icon with the color it is drawn in.
type Mark struct {
	Icon  string
	Color lipgloss.Color
}

// Marks used for result tree entries and stage states.
var (
	MarkArtifact = Mark{Check, Green}
	MarkCopied   = Mark{Equal, Muted}
	MarkExcluded = Mark{Warning, Yellow}
	MarkRunning  = Mark{Dot, Accent}
	MarkFailed   = Mark{Cross, Red}
	MarkCached   = Mark{Dash, Muted}
)

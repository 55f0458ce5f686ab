package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/py2sec/internal/ui/style"
)

var (
	colorWhite = lipgloss.Color("#FFFFFF")

	// Pane Styles.
	listStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(style.Muted).
			MarginRight(1).
			PaddingRight(1)

	logStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	// Stage Status Styles.
	stageRunningStyle = lipgloss.NewStyle().
				Foreground(style.MarkRunning.Color).
				Bold(true)

	stageDoneStyle = lipgloss.NewStyle().
			Foreground(style.MarkArtifact.Color)

	stageErrorStyle = lipgloss.NewStyle().
			Foreground(style.MarkFailed.Color)

	stageSkippedStyle = lipgloss.NewStyle().
				Foreground(style.MarkCached.Color).
				Faint(true)

	// Header Styles.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Accent).
			Foreground(colorWhite)
)

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/py2sec/internal/ui/style"
)

// View renders the stage list next to the logs of the selected stage.
func (m *Model) View() string {
	if m.Viewport.Height == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.stageList(),
		m.logPane(),
	)
}

func (m *Model) stageList() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("STAGES") + "\n\n")

	for i, stage := range m.Stages {
		var st lipgloss.Style
		var icon string

		switch stage.Status {
		case StatusRunning:
			st = stageRunningStyle
			icon = style.MarkRunning.Icon
		case StatusError:
			st = stageErrorStyle
			icon = style.MarkFailed.Icon
		default:
			st = stageDoneStyle
			icon = style.MarkArtifact.Icon
		}

		if stage.Cached {
			st = stageSkippedStyle
			icon = style.MarkCached.Icon
		}

		line := fmt.Sprintf("%s %s", icon, stage.Name)
		if i == m.SelectedIdx {
			line = "> " + line
		} else {
			line = "  " + line
		}

		s.WriteString(st.Render(line) + "\n")
	}

	return listStyle.Render(s.String())
}

func (m *Model) logPane() string {
	header := titleStyle.Render("LOGS (Waiting...)")
	if node := m.Selected(); node != nil {
		mode := "Following"
		if !m.FollowMode {
			mode = "Manual"
		}
		header = titleStyle.Render(fmt.Sprintf("LOGS: %s (%s)", node.Name, mode))
	}

	return logStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			m.Viewport.View(),
		),
	)
}

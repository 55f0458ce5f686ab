// Package tui provides an interactive view of the stages of a running build.
package tui

import (
	"bytes"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	stageListWidthRatio = 0.3
	logPaneBorderWidth  = 4
)

// StageStatus represents the current state of a stage.
type StageStatus string

const (
	// StatusRunning indicates the stage is currently executing.
	StatusRunning StageStatus = "Running"
	// StatusDone indicates the stage completed successfully.
	StatusDone StageStatus = "Done"
	// StatusError indicates the stage failed.
	StatusError StageStatus = "Error"
)

// StageNode represents a single stage in the UI list.
type StageNode struct {
	ID     string
	Name   string
	Status StageStatus
	Logs   bytes.Buffer
	Cached bool
}

// Model represents the main TUI state.
type Model struct {
	Stages      []*StageNode
	StageMap    map[string]*StageNode
	Viewport    viewport.Model
	SelectedIdx int
	FollowMode  bool
	OnQuit      func()
}

// NewModel creates a new TUI model with default settings. onQuit runs when
// the user quits the view.
func NewModel(onQuit func()) *Model {
	return &Model{
		Stages:     make([]*StageNode, 0),
		StageMap:   make(map[string]*StageNode),
		Viewport:   viewport.New(0, 0),
		FollowMode: true,
		OnQuit:     onQuit,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Selected returns the stage whose logs are shown, or nil.
func (m *Model) Selected() *StageNode {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Stages) {
		return m.Stages[m.SelectedIdx]
	}
	return nil
}

func (m *Model) refresh() {
	node := m.Selected()
	if node == nil {
		return
	}
	m.Viewport.SetContent(WrapLog(node.Logs.String(), m.Viewport.Width))
	if m.FollowMode {
		m.Viewport.GotoBottom()
	}
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // one case per message type
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.OnQuit != nil {
				m.OnQuit()
			}
			return m, tea.Quit
		case "k", "up":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.FollowMode = false
				m.refresh()
			}
		case "j", "down":
			if m.SelectedIdx < len(m.Stages)-1 {
				m.SelectedIdx++
				m.FollowMode = false
				m.refresh()
			}
		case "esc":
			m.FollowMode = true
			m.SelectedIdx = len(m.Stages) - 1
			m.refresh()
		default:
			var cmd tea.Cmd
			m.Viewport, cmd = m.Viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		listWidth := int(float64(msg.Width) * stageListWidthRatio)
		m.Viewport.Width = msg.Width - listWidth - logPaneBorderWidth
		m.Viewport.Height = msg.Height - lipgloss.Height(titleStyle.Render("LOGS"))
		m.refresh()

	case MsgStageStart:
		node := &StageNode{ID: msg.ID, Name: msg.Name, Status: StatusRunning}
		m.Stages = append(m.Stages, node)
		m.StageMap[msg.ID] = node
		if m.FollowMode {
			m.SelectedIdx = len(m.Stages) - 1
			m.refresh()
		}

	case MsgStageLog:
		if node, ok := m.StageMap[msg.ID]; ok {
			node.Logs.Write(msg.Data)
			if node == m.Selected() {
				m.refresh()
			}
		}

	case MsgStageCached:
		if node, ok := m.StageMap[msg.ID]; ok {
			node.Cached = true
		}

	case MsgStageComplete:
		if node, ok := m.StageMap[msg.ID]; ok {
			if msg.Err != nil {
				node.Status = StatusError
				_, _ = node.Logs.WriteString(msg.Err.Error() + "\n")
				m.refresh()
			} else {
				node.Status = StatusDone
			}
		}

	case MsgClose:
		return m, tea.Quit
	}

	return m, nil
}

// WrapLog wraps s to width. Non-positive widths return s unchanged.
func WrapLog(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

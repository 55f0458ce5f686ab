package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/py2sec/internal/adapters/telemetry/progrock" //nolint:depguard // Stages are recorded on a progrock tape
	"go.trai.ch/py2sec/internal/core/ports"
)

var _ ports.Dashboard = (*Dashboard)(nil)

// Dashboard runs the stage view as a bubbletea program.
type Dashboard struct {
	in   io.Reader
	out  io.Writer
	opts []tea.ProgramOption
}

// NewDashboard creates a Dashboard reading keys from in and drawing to out.
// A nil in disables keyboard input.
func NewDashboard(in io.Reader, out io.Writer, opts ...tea.ProgramOption) *Dashboard {
	return &Dashboard{in: in, out: out, opts: opts}
}

// Open starts the program in the background. The returned telemetry records
// stages on a progrock tape that feeds the program.
func (d *Dashboard) Open(ctx context.Context) (context.Context, ports.Telemetry, error) {
	runCtx, cancel := context.WithCancel(ctx)

	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(d.in),
		tea.WithOutput(d.out),
	}, d.opts...)
	p := tea.NewProgram(NewModel(cancel), opts...)

	done := make(chan error, 1)
	go func() {
		_, err := p.Run()
		done <- err
	}()

	wait := func() error {
		p.Send(MsgClose{})
		err := <-done
		cancel()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}
	return runCtx, progrock.NewRecorder(NewTapeWriter(p.Send, wait)), nil
}

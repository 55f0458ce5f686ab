package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vito/progrock"
)

var _ progrock.Writer = (*TapeWriter)(nil)

// TapeWriter is a progrock.Writer that turns vertex updates into stage
// messages for the dashboard program.
type TapeWriter struct {
	send    func(tea.Msg)
	closeFn func() error

	mu   sync.Mutex
	seen map[string]*tapeState

	once     sync.Once
	closeErr error
}

type tapeState struct {
	cached    bool
	completed bool
}

// NewTapeWriter creates a TapeWriter delivering messages through send.
// closeFn runs once on Close and may be nil.
func NewTapeWriter(send func(tea.Msg), closeFn func() error) *TapeWriter {
	return &TapeWriter{send: send, closeFn: closeFn, seen: map[string]*tapeState{}}
}

// WriteStatus forwards the vertex transitions and log chunks of an update.
func (w *TapeWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.Vertexes {
		w.processVertex(v)
	}
	for _, l := range update.Logs {
		if _, ok := w.seen[l.Vertex]; !ok {
			continue
		}
		w.send(MsgStageLog{ID: l.Vertex, Data: l.Data})
	}
	return nil
}

func (w *TapeWriter) processVertex(v *progrock.Vertex) {
	st, ok := w.seen[v.Id]
	if !ok {
		st = &tapeState{}
		w.seen[v.Id] = st
		w.send(MsgStageStart{ID: v.Id, Name: v.Name})
	}
	if v.Cached && !st.cached {
		st.cached = true
		w.send(MsgStageCached{ID: v.Id})
	}
	if v.Completed != nil && !st.completed {
		st.completed = true
		w.send(MsgStageComplete{ID: v.Id, Err: vertexError(v)})
	}
}

func vertexError(v *progrock.Vertex) error {
	switch {
	case v.Canceled:
		return context.Canceled
	case v.Error != nil:
		return errors.New(v.GetError())
	default:
		return nil
	}
}

// Close stops the program.
func (w *TapeWriter) Close() error {
	w.once.Do(func() {
		if w.closeFn != nil {
			w.closeErr = w.closeFn()
		}
	})
	return w.closeErr
}

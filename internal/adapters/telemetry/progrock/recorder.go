// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/py2sec/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry by recording one progrock vertex per stage.
type Recorder struct {
	rec *progrock.Recorder
	seq atomic.Uint64
}

// NewRecorder creates a new Recorder sending status updates to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{rec: progrock.NewRecorder(w)}
}

// Record starts recording a new vertex. Each call gets its own digest, so a stage
// name may be recorded more than once per run.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(strconv.FormatUint(r.seq.Add(1), 10) + ":" + name)
	vertex := &Vertex{vertex: r.rec.Vertex(d, name)}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close completes the recording session and closes the writer.
func (r *Recorder) Close() error {
	r.rec.Complete()
	return r.rec.Close()
}

// Package progress implements ports.Progress on a progrock tape.
package progress

import (
	"fmt"
	"io"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/pkgraph/internal/core/ports"
)

// Recorder reports load progress as a progrock vertex. Each Show writes one
// "[current/total] topic" line to the vertex and, when set, to a mirror writer.
type Recorder struct {
	mu      sync.Mutex
	w       progrock.Writer
	rec     *progrock.Recorder
	mirror  io.Writer
	vertex  *progrock.VertexRecorder
	runs    int
	topic   string
	current int
	total   int
	shown   string
}

var _ ports.Progress = (*Recorder)(nil)

// New creates a Recorder writing to an in-memory tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape(), nil)
}

// NewRecorder creates a Recorder writing to w. Lines are also copied to mirror when it is
// not nil.
func NewRecorder(w progrock.Writer, mirror io.Writer) *Recorder {
	return &Recorder{
		w:      w,
		rec:    progrock.NewRecorder(w),
		mirror: mirror,
	}
}

// SetMirror changes the writer receiving a copy of every progress line.
func (r *Recorder) SetMirror(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mirror = w
}

// Start opens a new vertex and clears the counters.
func (r *Recorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.runs++
	name := fmt.Sprintf("load #%d", r.runs)
	r.vertex = r.rec.Vertex(digest.FromString(name), name)
	r.topic, r.current, r.total, r.shown = "", 0, 0, ""
}

// SetTopic sets the label of the following lines.
func (r *Recorder) SetTopic(topic string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.topic = topic
}

// Set replaces the counters.
func (r *Recorder) Set(current, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current, r.total = current, total
}

// Add advances the current counter by delta.
func (r *Recorder) Add(delta int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current += delta
}

// Show writes the current state unless it equals the last line written.
func (r *Recorder) Show() {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := fmt.Sprintf("[%d/%d] %s\n", r.current, r.total, r.topic)
	if line == r.shown {
		return
	}
	r.shown = line

	if r.vertex != nil {
		_, _ = io.WriteString(r.vertex.Stdout(), line)
	}
	if r.mirror != nil {
		_, _ = io.WriteString(r.mirror, line)
	}
}

// Stop completes the vertex opened by Start.
func (r *Recorder) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.vertex == nil {
		return
	}
	r.vertex.Done(nil)
	r.vertex = nil
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

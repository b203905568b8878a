package progrock

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/zerr"
)

const (
	statusRunning  = "running"
	statusDone     = "done"
	statusCached   = "cached"
	statusFailed   = "failed"
	statusCanceled = "canceled"
)

var _ progrock.Writer = (*Summary)(nil)

// Summary is a progrock.Writer that collects vertex updates and renders one
// line per vertex, followed by its log output, when closed.
type Summary struct {
	w io.Writer

	mu     sync.Mutex
	order  []string
	states map[string]*vertexState
	closed bool
}

type vertexState struct {
	name   string
	status string
	err    string
	logs   bytes.Buffer
}

// NewSummary creates a Summary that renders to w.
func NewSummary(w io.Writer) *Summary {
	return &Summary{
		w:      w,
		states: make(map[string]*vertexState),
	}
}

// WriteStatus implements progrock.Writer.
func (s *Summary) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range update.Vertexes {
		st := s.state(v.Id)
		st.name = v.Name
		switch {
		case v.Error != nil:
			st.status = statusFailed
			st.err = *v.Error
		case v.Canceled:
			st.status = statusCanceled
		case v.Cached:
			st.status = statusCached
		case v.Completed != nil:
			st.status = statusDone
		}
	}
	for _, l := range update.Logs {
		s.state(l.Vertex).logs.Write(l.Data)
	}
	return nil
}

func (s *Summary) state(id string) *vertexState {
	st, ok := s.states[id]
	if !ok {
		st = &vertexState{status: statusRunning}
		s.states[id] = st
		s.order = append(s.order, id)
	}
	return st
}

// Close renders the summary. Subsequent calls are no-ops.
func (s *Summary) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var out strings.Builder
	for _, id := range s.order {
		st := s.states[id]
		if st.name == "" {
			continue
		}
		out.WriteString(st.name + ": " + st.status)
		if st.err != "" {
			out.WriteString(": " + st.err)
		}
		out.WriteByte('\n')
		for line := range strings.Lines(st.logs.String()) {
			out.WriteString("  " + strings.TrimRight(line, "\n") + "\n")
		}
	}
	if out.Len() == 0 {
		return nil
	}
	if _, err := io.WriteString(s.w, out.String()); err != nil {
		return zerr.Wrap(err, "failed to render step summary")
	}
	return nil
}

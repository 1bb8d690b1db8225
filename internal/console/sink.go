package console

import (
	"fmt"
	"io"
	"sync"
)

// Sink writes pipeline log lines to a writer, one per line
type Sink struct {
	mu  sync.Mutex
	out io.Writer
}

// NewSink creates a sink writing to out
func NewSink(out io.Writer) *Sink {
	return &Sink{out: out}
}

// Log writes line followed by a newline. Write errors are ignored.
func (s *Sink) Log(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.out, line)
}

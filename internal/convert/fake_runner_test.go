package convert

import (
	"context"
	"sync"

	"github.com/ytget/yt-prodl/internal/model"
)

type call struct {
	name string
	args []string
}

// fakeRunner records invocations and answers them with a fixed result
type fakeRunner struct {
	mu     sync.Mutex
	calls  []call
	result model.CommandResult
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) model.CommandResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{name: name, args: append([]string(nil), args...)})
	return f.result
}

// logRecorder collects lines passed to a log callback
type logRecorder struct {
	lines []string
}

func (l *logRecorder) log(line string) {
	l.lines = append(l.lines, line)
}

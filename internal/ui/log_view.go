package ui

import (
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LogView is the read-only pipeline log shown under the controls
type LogView struct {
	mu     sync.Mutex
	lines  []string
	label  *widget.Label
	scroll *container.Scroll
}

// NewLogView creates an empty log view
func NewLogView() *LogView {
	label := widget.NewLabel("")
	label.Wrapping = fyne.TextWrapWord
	label.TextStyle = fyne.TextStyle{Monospace: true}

	scroll := container.NewVScroll(label)
	scroll.SetMinSize(fyne.NewSize(0, LogMinHeight))

	return &LogView{label: label, scroll: scroll}
}

// Container returns the scrollable log widget
func (v *LogView) Container() fyne.CanvasObject {
	return v.scroll
}

// Append adds a line. It is safe to call from the pipeline goroutine.
func (v *LogView) Append(line string) {
	v.mu.Lock()
	v.lines = append(v.lines, line)
	text := strings.Join(v.lines, "\n")
	v.mu.Unlock()

	fyne.Do(func() {
		v.render(text)
	})
}

// Clear removes all lines. Must be called on the UI thread.
func (v *LogView) Clear() {
	v.mu.Lock()
	v.lines = nil
	v.mu.Unlock()
	v.render("")
}

// Text returns the current log contents
func (v *LogView) Text() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return strings.Join(v.lines, "\n")
}

func (v *LogView) render(text string) {
	v.label.SetText(text)
	v.scroll.ScrollToBottom()
}

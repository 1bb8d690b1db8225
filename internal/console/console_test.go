package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/yt-prodl/internal/model"
)

func TestSink_Log(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)

	sink.Log("first")
	sink.Log("")
	sink.Log("third")

	assert.Equal(t, "first\n\nthird\n", buf.String())
}

func TestSink_ConcurrentLines(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sink.Log("line")
		}()
	}
	wg.Wait()

	assert.Equal(t, strings.Repeat("line\n", 20), buf.String())
}

func TestPrompter_ChooseProfile(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantChoice string
		wantOK     bool
	}{
		{"number", "3\n", "3", true},
		{"padded", "  2 \r\n", "2", true},
		{"no trailing newline", "4", "4", true},
		{"unknown number passes through", "9\n", "9", true},
		{"blank cancels", "\n", "", false},
		{"whitespace cancels", "   \n", "", false},
		{"eof cancels", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			choice, ok := p.ChooseProfile(context.Background(), model.Profiles)

			assert.Equal(t, tt.wantChoice, choice)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestPrompter_PrintsMenu(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("1\n"), &out)

	_, _ = p.ChooseProfile(context.Background(), model.Profiles)

	menu := out.String()
	assert.Contains(t, menu, PromptTitle)
	for _, profile := range model.Profiles {
		assert.Contains(t, menu, profile.Choice+") "+profile.Label)
	}
	assert.Contains(t, menu, "(1-4)")
}

func TestPrompter_ContextCancelled(t *testing.T) {
	// a reader that never returns
	r, w := io.Pipe()
	defer w.Close()

	p := NewPrompter(r, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	choice, ok := p.ChooseProfile(ctx, model.Profiles)

	assert.False(t, ok)
	assert.Empty(t, choice)
}

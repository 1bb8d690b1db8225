package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ytget/yt-prodl/internal/model"
)

// Prompt texts
const (
	PromptTitle = "Choose a conversion:"
	PromptInput = "Enter a number (1-%d), or leave blank to cancel: "
)

// Prompter asks for a conversion profile on a terminal
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading answers from in and writing the menu to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ChooseProfile prints the numbered menu and reads one line. A blank line,
// end of input or a cancelled context cancels. The answer is returned as typed
// so an unknown number reaches the conversion engine and is reported there.
func (p *Prompter) ChooseProfile(ctx context.Context, profiles []model.ConversionProfile) (string, bool) {
	fmt.Fprintln(p.out, PromptTitle)
	for _, profile := range profiles {
		fmt.Fprintf(p.out, "%s) %s\n", profile.Choice, profile.Label)
	}
	fmt.Fprintf(p.out, PromptInput, len(profiles))

	answers := make(chan string, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			close(answers)
			return
		}
		answers <- line
	}()

	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-answers:
		if !ok {
			return "", false
		}
		choice := strings.TrimSpace(line)
		if choice == "" {
			return "", false
		}
		return choice, true
	}
}

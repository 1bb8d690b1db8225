package download

import (
	"context"

	"github.com/ytget/yt-prodl/internal/model"
)

// Downloader defines the interface for the download pipeline.
type Downloader interface {
	// Run executes the pipeline on the calling goroutine
	Run(ctx context.Context, req model.DownloadRequest, hooks Hooks) *model.PipelineRun

	// Submit starts the pipeline in the background and returns the run ID.
	// It fails with model.ErrBusy while another run is in flight.
	Submit(ctx context.Context, req model.DownloadRequest, hooks Hooks) (string, error)

	// Busy reports whether a run is in flight
	Busy() bool
}

// LogFunc receives the user-facing progress lines, in order.
type LogFunc func(line string)

// Prompter asks the user to pick a conversion profile. It blocks until the user
// answers; ok is false when the user cancels.
type Prompter interface {
	ChooseProfile(ctx context.Context, profiles []model.ConversionProfile) (choice string, ok bool)
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(ctx context.Context, profiles []model.ConversionProfile) (string, bool)

// ChooseProfile implements Prompter.
func (f PrompterFunc) ChooseProfile(ctx context.Context, profiles []model.ConversionProfile) (string, bool) {
	return f(ctx, profiles)
}

// Hooks connect one run to its presentation shell. Any field may be nil:
// a nil Prompt cancels the conversion prompt.
type Hooks struct {
	Log    LogFunc
	Prompt Prompter
	// Done is called exactly once per run, whatever state the run ended in
	Done func(run *model.PipelineRun)
}

func (h Hooks) log(line string) {
	if h.Log != nil {
		h.Log(line)
	}
}

func (h Hooks) prompt(ctx context.Context) (string, bool) {
	if h.Prompt == nil {
		return "", false
	}
	return h.Prompt.ChooseProfile(ctx, model.Profiles)
}

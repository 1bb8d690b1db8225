package download

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/ytget/yt-prodl/internal/convert"
	"github.com/ytget/yt-prodl/internal/logging"
	"github.com/ytget/yt-prodl/internal/model"
	"github.com/ytget/yt-prodl/internal/platform"
	"github.com/ytget/yt-prodl/internal/runner"
)

// AppName is shown in the banner at the start of every run
const AppName = "YT ProDL"

// ConvertibleCodec is the codec that triggers the conversion prompt
const ConvertibleCodec = "vp9"

// RunIDPrefix prefixes generated run IDs
const RunIDPrefix = "run-"

// User-visible pipeline messages
const (
	MsgEnterURL            = "❌ Please enter a URL."
	MsgBannerRule          = "===================================="
	MsgBannerURL           = "URL: %s"
	MsgBannerFormat        = "Format: %s"
	MsgBannerQuality       = "Quality: %s"
	MsgBannerFolder        = "Download folder: %s"
	MsgFolderFailed        = "❌ Could not create the download folder %s: %v"
	MsgInvalidFormat       = "❌ Invalid format choice."
	MsgDownloading         = "⬇️  Downloading..."
	MsgToolStdout          = "%s stdout:\n%s"
	MsgToolStderr          = "%s stderr:\n%s"
	MsgToolNotFound        = "❌ %s was not found. Install it or set its path."
	MsgDownloadFailed      = "❌ Download failed. Check the log."
	MsgNoFile              = "❌ Could not find the downloaded file."
	MsgLatestFile          = "📁 Latest file: %s (%s)"
	MsgAudioDone           = "🎧 Audio file downloaded. Done."
	MsgWebmDone            = "🎥 WEBM downloaded. Done."
	MsgVideoCodec          = "🔍 Video codec: %s"
	MsgCodecSuitable       = "✅ The video already uses a suitable codec. Done."
	MsgVP9Detected         = "⚡ The video uses VP9. Choose a conversion."
	MsgConversionCancelled = "Conversion cancelled by user."
)

// Service runs the download pipeline, one run at a time
type Service struct {
	runner    runner.Runner
	prober    convert.CodecProber
	converter convert.Converter
	fetchTool string
	slot      *semaphore.Weighted
	log       *logrus.Entry
}

// NewService creates a new download service. An empty fetchTool means yt-dlp from PATH.
func NewService(r runner.Runner, prober convert.CodecProber, converter convert.Converter, fetchTool string, logger logrus.FieldLogger) *Service {
	if fetchTool == "" {
		fetchTool = YtDlpCommand
	}
	return &Service{
		runner:    r,
		prober:    prober,
		converter: converter,
		fetchTool: fetchTool,
		slot:      semaphore.NewWeighted(1),
		log:       logging.Component(logger, "download"),
	}
}

// Busy reports whether a submitted run is still in flight
func (s *Service) Busy() bool {
	if s.slot.TryAcquire(1) {
		s.slot.Release(1)
		return false
	}
	return true
}

// Submit starts the pipeline on a background goroutine. A second request while
// one is in flight is rejected with model.ErrBusy rather than queued. The slot
// is released before hooks.Done runs, so Done may submit again.
func (s *Service) Submit(ctx context.Context, req model.DownloadRequest, hooks Hooks) (string, error) {
	if !s.slot.TryAcquire(1) {
		return "", model.ErrBusy
	}

	run := model.NewPipelineRun(generateRunID(), req)
	go func() {
		defer s.finish(run, hooks)
		defer s.slot.Release(1)
		s.execute(ctx, run, hooks)
	}()

	return run.ID, nil
}

// Run executes the pipeline synchronously. It does not take the submission slot.
func (s *Service) Run(ctx context.Context, req model.DownloadRequest, hooks Hooks) (run *model.PipelineRun) {
	run = model.NewPipelineRun(generateRunID(), req)
	defer s.finish(run, hooks)
	s.execute(ctx, run, hooks)
	return run
}

// execute walks the state machine. Every return leads to finish.
func (s *Service) execute(ctx context.Context, run *model.PipelineRun, hooks Hooks) {
	log := s.log.WithField("run_id", run.ID)
	run.Status = model.RunStatusRunning
	run.StartedAt = time.Now()

	// Validating
	run.Stage = model.StageValidating
	if strings.TrimSpace(run.Request.URL) == "" {
		hooks.log(MsgEnterURL)
		run.Fail(model.ErrEmptyURL)
		return
	}
	run.Request.URL = strings.TrimSpace(run.Request.URL)

	// the destination is read once here and never again during the run
	dir := strings.TrimSpace(run.Request.DestinationDir)
	if dir == "" {
		dir = platform.GetDefaultDownloadDir()
	}
	run.Request.DestinationDir = dir
	req := run.Request

	hooks.log(MsgBannerRule)
	hooks.log("       " + AppName)
	hooks.log(MsgBannerRule)
	hooks.log(fmt.Sprintf(MsgBannerURL, req.URL))
	hooks.log(fmt.Sprintf(MsgBannerFormat, req.Container))
	hooks.log(fmt.Sprintf(MsgBannerQuality, req.Quality))
	hooks.log(fmt.Sprintf(MsgBannerFolder, dir))
	hooks.log("")

	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		hooks.log(fmt.Sprintf(MsgFolderFailed, dir, err))
		run.Fail(fmt.Errorf("create destination %s: %w", dir, err))
		return
	}

	args, err := BuildFetchArgs(req)
	if err != nil {
		hooks.log(MsgInvalidFormat)
		run.Fail(err)
		return
	}

	// Fetching
	run.Stage = model.StageFetching
	log.WithFields(logrus.Fields{
		"container": req.Container,
		"quality":   req.Quality,
	}).Infof("fetching %s", req.URL)
	hooks.log(MsgDownloading)

	result := s.runner.Run(ctx, s.fetchTool, args...)
	s.echoOutput(hooks, result)
	if !result.Success() {
		if runner.IsToolNotFound(result) {
			hooks.log(fmt.Sprintf(MsgToolNotFound, s.fetchTool))
			run.Fail(fmt.Errorf("%w: %s", model.ErrToolNotFound, s.fetchTool))
			return
		}
		hooks.log(MsgDownloadFailed)
		run.Fail(fmt.Errorf("%w: %s exited with code %d", model.ErrToolFailed, s.fetchTool, result.ExitCode))
		return
	}

	// Locating
	run.Stage = model.StageLocating
	file, err := platform.FindNewestMedia(dir)
	if err != nil {
		if !errors.Is(err, model.ErrNoOutputFound) {
			err = fmt.Errorf("%w: %v", model.ErrNoOutputFound, err)
		}
		hooks.log(MsgNoFile)
		run.Fail(err)
		return
	}
	run.OutputPath = file.Path
	hooks.log(fmt.Sprintf(MsgLatestFile, file.Path, humanize.Bytes(uint64(file.Size))))

	switch req.Container {
	case model.ContainerAudio:
		hooks.log(MsgAudioDone)
		return
	case model.ContainerWEBM:
		hooks.log(MsgWebmDone)
		return
	}

	// Inspecting
	run.Stage = model.StageInspecting
	codec := s.prober.ProbeVideoCodec(ctx, file.Path)
	run.Codec = codec
	hooks.log(fmt.Sprintf(MsgVideoCodec, codec))
	if !strings.EqualFold(codec, ConvertibleCodec) {
		hooks.log(MsgCodecSuitable)
		return
	}

	// ConversionPrompt
	run.Stage = model.StageConversionPrompt
	hooks.log(MsgVP9Detected)
	choice, ok := hooks.prompt(ctx)
	if !ok || strings.TrimSpace(choice) == "" {
		hooks.log(MsgConversionCancelled)
		run.Cancel(model.ErrUserCancelled)
		return
	}

	// Converting
	run.Stage = model.StageConverting
	output, converted := s.converter.Convert(ctx, file.Path, choice, hooks.log)
	switch {
	case converted:
		run.ConvertedPath = output
	case output == "":
		run.Cancel(fmt.Errorf("%w: conversion profile %q", model.ErrUnrecognizedChoice, choice))
	default:
		run.Fail(fmt.Errorf("%w: conversion to %s", model.ErrToolFailed, output))
	}
}

// echoOutput forwards the fetch tool's output to the user log
func (s *Service) echoOutput(hooks Hooks, result model.CommandResult) {
	name := filepath.Base(s.fetchTool)
	if out := strings.TrimSpace(result.Stdout); out != "" {
		hooks.log(fmt.Sprintf(MsgToolStdout, name, out))
	}
	if errOut := strings.TrimSpace(result.Stderr); errOut != "" {
		hooks.log(fmt.Sprintf(MsgToolStderr, name, errOut))
	}
}

// finish moves the run to Done and fires the completion hook. It is always
// deferred, so it also runs when the pipeline panics.
func (s *Service) finish(run *model.PipelineRun, hooks Hooks) {
	if r := recover(); r != nil {
		s.log.WithField("run_id", run.ID).Errorf("pipeline panic: %v", r)
		run.Fail(fmt.Errorf("pipeline panic: %v", r))
	}

	run.Stage = model.StageDone
	run.FinishedAt = time.Now()
	if !run.Status.IsFinished() {
		run.Status = model.RunStatusCompleted
	}

	entry := s.log.WithFields(logrus.Fields{
		"run_id":  run.ID,
		"status":  run.Status,
		"elapsed": run.GetElapsedString(),
	})
	if run.LastError != nil {
		entry.WithError(run.LastError).Warn("pipeline finished")
	} else {
		entry.Info("pipeline finished")
	}

	if hooks.Done != nil {
		hooks.Done(run)
	}
}

// generateRunID generates a unique, time-ordered run ID using UUID v7
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}

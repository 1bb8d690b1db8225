package convert

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ytget/yt-prodl/internal/logging"
	"github.com/ytget/yt-prodl/internal/runner"
)

// ffprobe constants for codec detection
const (
	FFprobeCommand      = "ffprobe"
	FFprobeLogLevel     = "error"
	FFprobeVideoStream  = "v:0"
	FFprobeShowEntries  = "stream=codec_name"
	FFprobeOutputFormat = "default=noprint_wrappers=1:nokey=1"

	// UnknownCodec is returned when the probe fails or prints nothing
	UnknownCodec = "unknown"
)

// Inspector detects the video codec of a file with ffprobe
type Inspector struct {
	runner runner.Runner
	tool   string
	log    *logrus.Entry
}

// NewInspector creates an inspector running probeTool through r
func NewInspector(r runner.Runner, probeTool string, logger logrus.FieldLogger) *Inspector {
	if probeTool == "" {
		probeTool = FFprobeCommand
	}
	return &Inspector{
		runner: r,
		tool:   probeTool,
		log:    logging.Component(logger, "convert"),
	}
}

// BuildProbeArgs builds the ffprobe arguments selecting the first video stream's codec name
func BuildProbeArgs(path string) []string {
	return []string{
		"-v", FFprobeLogLevel,
		"-select_streams", FFprobeVideoStream,
		"-show_entries", FFprobeShowEntries,
		"-of", FFprobeOutputFormat,
		path,
	}
}

// ProbeVideoCodec returns the codec name of the first video stream, or
// UnknownCodec when the probe exits non-zero or prints nothing.
func (i *Inspector) ProbeVideoCodec(ctx context.Context, path string) string {
	result := i.runner.Run(ctx, i.tool, BuildProbeArgs(path)...)
	if !result.Success() {
		i.log.WithField("exit_code", result.ExitCode).Warnf("probe failed for %s", path)
		return UnknownCodec
	}

	codec := strings.TrimSpace(result.Stdout)
	if codec == "" {
		return UnknownCodec
	}
	return codec
}

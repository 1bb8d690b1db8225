package convert

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ytget/yt-prodl/internal/logging"
	"github.com/ytget/yt-prodl/internal/model"
	"github.com/ytget/yt-prodl/internal/runner"
)

// FFmpeg constants for the conversion profiles
const (
	FFmpegCommand = "ffmpeg"

	// ProRes settings
	ProResCodec        = "prores_ks"
	ProResProfileHQ    = "3"
	ProResProfileProxy = "0"
	ProResPixelFormat  = "yuv422p10le"
	ProResAudioCodec   = "pcm_s16le"

	// Delivery settings
	H264Codec      = "libx264"
	HEVCCodec      = "libx265"
	DeliveryPreset = "slow"
	DeliveryCRF    = "18"
	DeliveryAudio  = "aac"
)

// User-visible conversion messages
const (
	MsgConverting    = "🎬 Converting to %s..."
	MsgConvertDone   = "✅ Done: %s"
	MsgConvertFailed = "❌ Conversion failed. See the log above."
	MsgInvalidChoice = "❌ Invalid choice, conversion cancelled."
)

// Engine runs ffmpeg with one of the fixed profile templates
type Engine struct {
	runner runner.Runner
	tool   string
	log    *logrus.Entry
}

// NewEngine creates a conversion engine running transcodeTool through r
func NewEngine(r runner.Runner, transcodeTool string, logger logrus.FieldLogger) *Engine {
	if transcodeTool == "" {
		transcodeTool = FFmpegCommand
	}
	return &Engine{
		runner: r,
		tool:   transcodeTool,
		log:    logging.Component(logger, "convert"),
	}
}

// OutputPath derives the output file for source: the source extension is
// replaced by the profile suffix and container extension
func OutputPath(sourcePath string, profile model.ConversionProfile) string {
	ext := filepath.Ext(sourcePath)
	baseName := strings.TrimSuffix(sourcePath, ext)
	return baseName + profile.Suffix + profile.Extension
}

// BuildArgs builds the ffmpeg arguments for profile. It returns nil for a
// profile it does not know.
func BuildArgs(profile model.ConversionProfile, inputPath, outputPath string) []string {
	switch profile.Choice {
	case model.ChoiceProResHQ:
		return proResArgs(ProResProfileHQ, inputPath, outputPath)
	case model.ChoiceProResProxy:
		return proResArgs(ProResProfileProxy, inputPath, outputPath)
	case model.ChoiceH264:
		return deliveryArgs(H264Codec, inputPath, outputPath)
	case model.ChoiceHEVC:
		return deliveryArgs(HEVCCodec, inputPath, outputPath)
	default:
		return nil
	}
}

func proResArgs(profile, inputPath, outputPath string) []string {
	return []string{
		"-i", inputPath,
		"-c:v", ProResCodec,
		"-profile:v", profile,
		"-pix_fmt", ProResPixelFormat,
		"-c:a", ProResAudioCodec,
		outputPath,
	}
}

func deliveryArgs(codec, inputPath, outputPath string) []string {
	return []string{
		"-i", inputPath,
		"-c:v", codec,
		"-preset", DeliveryPreset,
		"-crf", DeliveryCRF,
		"-c:a", DeliveryAudio,
		outputPath,
	}
}

// Convert re-encodes sourcePath using the profile selected by choice and
// reports progress through logf. An unknown choice logs a cancellation and
// runs nothing. The returned path is empty unless the conversion ran.
func (e *Engine) Convert(ctx context.Context, sourcePath, choice string, logf func(string)) (string, bool) {
	profile, ok := model.ProfileByChoice(strings.TrimSpace(choice))
	if !ok {
		e.log.WithField("choice", choice).Warn("unrecognized conversion choice")
		logf(MsgInvalidChoice)
		return "", false
	}

	outputPath := OutputPath(sourcePath, profile)
	args := BuildArgs(profile, sourcePath, outputPath)

	logf(fmt.Sprintf(MsgConverting, profile.Name))

	result := e.runner.Run(ctx, e.tool, args...)
	if out := strings.TrimSpace(result.Stdout); out != "" {
		logf(out)
	}
	if errOut := strings.TrimSpace(result.Stderr); errOut != "" {
		logf(errOut)
	}

	if !result.Success() {
		e.log.WithFields(logrus.Fields{
			"profile":   profile.Name,
			"exit_code": result.ExitCode,
		}).Error("conversion failed")
		logf(MsgConvertFailed)
		return outputPath, false
	}

	e.log.WithField("profile", profile.Name).Infof("converted %s -> %s", sourcePath, outputPath)
	logf(fmt.Sprintf(MsgConvertDone, outputPath))
	return outputPath, true
}

package download

import (
	"fmt"
	"path/filepath"

	"github.com/ytget/yt-prodl/internal/model"
)

// yt-dlp invocation constants
const (
	YtDlpCommand = "yt-dlp"

	OutputTemplate = "%(title)s.%(ext)s"

	FlagFormat            = "-f"
	FlagOutput            = "-o"
	FlagMergeOutputFormat = "--merge-output-format"
	FlagExtractAudio      = "--extract-audio"
	FlagAudioFormat       = "--audio-format"

	MergeFormatMP4 = "mp4"
	AudioFormatMP3 = "mp3"
)

// OutputTemplatePath returns the yt-dlp output template inside dir
func OutputTemplatePath(dir string) string {
	return filepath.Join(dir, OutputTemplate)
}

// BuildFetchArgs builds the yt-dlp arguments for req. req.DestinationDir must
// already be resolved. An unknown container yields ErrUnrecognizedChoice.
func BuildFetchArgs(req model.DownloadRequest) ([]string, error) {
	output := OutputTemplatePath(req.DestinationDir)

	switch req.Container {
	case model.ContainerMP4:
		return []string{
			FlagFormat, SelectorFor(req.Quality),
			FlagOutput, output,
			req.URL,
			FlagMergeOutputFormat, MergeFormatMP4,
		}, nil
	case model.ContainerWEBM:
		return []string{
			FlagFormat, SelectorFor(req.Quality),
			FlagOutput, output,
			req.URL,
		}, nil
	case model.ContainerAudio:
		return []string{
			FlagFormat, SelectorAudio,
			FlagOutput, output,
			req.URL,
			FlagExtractAudio,
			FlagAudioFormat, AudioFormatMP3,
		}, nil
	default:
		return nil, fmt.Errorf("%w: container %q", model.ErrUnrecognizedChoice, req.Container)
	}
}

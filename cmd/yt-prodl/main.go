// Command yt-prodl runs the download pipeline from a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ytget/yt-prodl/internal/config"
	"github.com/ytget/yt-prodl/internal/console"
	"github.com/ytget/yt-prodl/internal/convert"
	"github.com/ytget/yt-prodl/internal/download"
	"github.com/ytget/yt-prodl/internal/logging"
	"github.com/ytget/yt-prodl/internal/model"
	"github.com/ytget/yt-prodl/internal/runner"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	url := flag.String("url", "", "video URL to download")
	format := flag.String("format", string(model.ContainerMP4), "container: MP4, WEBM or AUDIO")
	quality := flag.String("quality", string(model.QualityMax), "quality: Max, 1080p or 720p")
	dir := flag.String("dir", "", "download folder (default ~/YouTubeDownloads)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("yt-prodl %s\n", version)
		return 0
	}

	tools, err := config.LoadTools()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return 2
	}

	logger := logging.New(tools.LogLevel)
	logger.WithField("version", version).Debug("yt-prodl starting")

	if *url == "" && flag.NArg() > 0 {
		*url = flag.Arg(0)
	}
	if *dir == "" {
		*dir = tools.DownloadDir
	}

	execRunner := runner.NewExecRunner(logger)
	svc := download.NewService(execRunner,
		convert.NewInspector(execRunner, tools.ProbeTool, logger),
		convert.NewEngine(execRunner, tools.TranscodeTool, logger),
		tools.FetchTool, logger)

	sink := console.NewSink(os.Stdout)
	req := model.DownloadRequest{
		URL:            *url,
		Container:      model.ParseContainer(*format),
		Quality:        model.ParseQuality(*quality),
		DestinationDir: *dir,
	}

	result := svc.Run(context.Background(), req, download.Hooks{
		Log:    sink.Log,
		Prompt: console.NewPrompter(os.Stdin, os.Stdout),
	})

	if result.Status == model.RunStatusError {
		return 1
	}
	return 0
}

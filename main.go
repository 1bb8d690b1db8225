package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-prodl/internal/config"
	"github.com/ytget/yt-prodl/internal/convert"
	"github.com/ytget/yt-prodl/internal/download"
	"github.com/ytget/yt-prodl/internal/logging"
	"github.com/ytget/yt-prodl/internal/platform"
	"github.com/ytget/yt-prodl/internal/runner"
	"github.com/ytget/yt-prodl/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-prodl"
	AppName = "YT ProDL"
)

func main() {
	tools, err := config.LoadTools()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}

	logger := logging.New(tools.LogLevel)
	logger.Infof("%s v%s starting...", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp, tools.DownloadDir)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		logger.WithError(err).Warn("failed to ensure downloads dir")
	}

	execRunner := runner.NewExecRunner(logger)
	downloadSvc := download.NewService(execRunner,
		convert.NewInspector(execRunner, tools.ProbeTool, logger),
		convert.NewEngine(execRunner, tools.TranscodeTool, logger),
		tools.FetchTool, logger)

	// Create and setup UI
	ui.NewRootUI(myWindow, downloadSvc, settings, logger)

	// Show and run
	myWindow.ShowAndRun()
}

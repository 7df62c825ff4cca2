package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"ydownloader/internal/config"
	"ydownloader/internal/download"
	"ydownloader/internal/history"
	"ydownloader/internal/platform"
	"ydownloader/internal/relay"
	"ydownloader/internal/ui"
	"ydownloader/internal/validate"
	"ydownloader/internal/ytdlp"
)

// version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ydownloader.app"
	AppName = "YDownloader"

	WindowWidth  = 600
	WindowHeight = 700
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.WithField("version", version).Info("starting")

	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	cfg := config.NewStore("")
	hist := history.NewStore("")

	downloadsDir := cfg.LastOutputFolder()
	if downloadsDir == "" {
		if dir, err := platform.DownloadsDir(); err == nil {
			downloadsDir = dir
		}
	}
	if err := platform.EnsureDir(downloadsDir); err != nil {
		logrus.WithError(err).Warn("failed to ensure downloads dir")
	}

	validator := validate.NewURLValidator(ytdlp.NewSiteRegistry())
	engine := ytdlp.NewAdapter()
	svc := download.NewService(validator, engine, platform.FS{}, hist)
	queue := relay.NewQueue()

	// Create and setup UI
	ui.NewRootUI(myWindow, svc, queue, cfg, hist)

	// Show and run
	myWindow.ShowAndRun()
	queue.Close()
}

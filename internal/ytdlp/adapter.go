// Package ytdlp adapts the yt-dlp engine (via github.com/lrstanley/go-ytdlp)
// to the coordinator's Engine contract: a blocking Run with progress
// reporting, cooperative cancellation, and errors mapped into the
// download taxonomy.
package ytdlp

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"time"

	goytdlp "github.com/lrstanley/go-ytdlp"
	"github.com/sirupsen/logrus"

	"ydownloader/internal/download"
	"ydownloader/internal/errs"
	"ydownloader/internal/model"
	"ydownloader/internal/platform"
)

// Output template and format selectors passed to yt-dlp
const (
	outputTemplate    = "%(title)s.%(ext)s"
	videoFormat       = "bestvideo+bestaudio/best"
	audioFormat       = "bestaudio/best"
	progressFrequency = 500 * time.Millisecond
)

// Adapter wraps yt-dlp for a single download at a time. SignalCancel
// cancels the context of the in-flight Run; calling it with no run in
// flight is a no-op.
type Adapter struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	log    *logrus.Entry
}

// NewAdapter creates an engine adapter
func NewAdapter() *Adapter {
	return &Adapter{log: logrus.WithField("component", "ytdlp")}
}

// Run downloads url into outputDir and returns the resolved output path.
// It blocks until the download reaches an outcome. A run aborted by
// SignalCancel returns a cancellation outcome.
func (a *Adapter) Run(url, outputDir string, format model.Format, onProgress func(download.ProgressInfo)) (string, error) {
	ctx, cancel := context.WithCancel(context.Background())
	a.setCancel(cancel)
	defer a.setCancel(nil)
	defer cancel()

	dl := goytdlp.New().
		RestrictFilenames().
		NoPlaylist().
		Output(filepath.Join(outputDir, outputTemplate))

	if format == model.FormatAudio {
		dl = dl.Format(audioFormat).ExtractAudio().AudioFormat("mp3")
	} else {
		dl = dl.Format(videoFormat).MergeOutputFormat("mp4")
	}

	dl.ProgressFunc(progressFrequency, func(update goytdlp.ProgressUpdate) {
		onProgress(progressInfo(update))
	})

	result, err := dl.Run(ctx, url)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			// yt-dlp leaves .part/.ytdl/.temp files behind on abort.
			if cleanupErr := platform.DeletePartialFiles(outputDir); cleanupErr != nil {
				a.log.WithError(cleanupErr).Warn("partial file cleanup failed")
			}
			return "", errs.Cancelled()
		}
		return "", classify(err)
	}

	outputPath := resolvedPath(result)
	if outputPath == "" {
		a.log.WithField("url", url).Warn("download finished but no output path reported")
		return "", errs.Generic(errors.New("download completed but the file was not found"))
	}
	return outputPath, nil
}

// SignalCancel aborts the in-flight run, if any. Idempotent.
func (a *Adapter) SignalCancel() {
	a.mu.Lock()
	cancel := a.cancel
	a.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (a *Adapter) setCancel(cancel context.CancelFunc) {
	a.mu.Lock()
	a.cancel = cancel
	a.mu.Unlock()
}

// progressInfo maps a yt-dlp progress update to the coordinator's shape
func progressInfo(update goytdlp.ProgressUpdate) download.ProgressInfo {
	info := download.ProgressInfo{
		Percent: percentOf(float64(update.DownloadedBytes), float64(update.TotalBytes)),
	}

	if update.Status == goytdlp.ProgressStatusPostProcessing {
		info.Processing = true
		info.Percent = 100
	}

	if update.Info != nil && update.Info.Title != nil {
		info.Title = *update.Info.Title
	}

	return info
}

// percentOf computes a clamped percentage, 0 when the total is unknown
func percentOf(downloaded, total float64) int {
	if total <= 0 {
		return 0
	}
	return model.ClampPercent(int(downloaded / total * 100))
}

// resolvedPath extracts the downloaded file path from the run result
func resolvedPath(result *goytdlp.Result) string {
	if result == nil {
		return ""
	}
	info, err := result.GetExtractedInfo()
	if err != nil || len(info) == 0 {
		return ""
	}
	if info[0].Filename != nil {
		return *info[0].Filename
	}
	return ""
}

// classify maps yt-dlp failures into the error taxonomy by inspecting
// the diagnostic, the same signals the stock yt-dlp messages carry.
func classify(err error) error {
	msg := strings.ToLower(err.Error())

	for _, marker := range []string{"unavailable", "private", "removed", "does not exist", "not found"} {
		if strings.Contains(msg, marker) {
			return errs.ContentUnavailable(err)
		}
	}

	for _, marker := range []string{"network", "connection", "timed out", "timeout", "resolve", "unreachable"} {
		if strings.Contains(msg, marker) {
			return errs.Transport(err)
		}
	}

	return errs.Generic(err)
}

package download

import (
	"ydownloader/internal/model"
	"ydownloader/internal/validate"
)

// ProgressInfo is one progress report from the engine
type ProgressInfo struct {
	Percent    int    // 0-100; 0 when the total size is unknown
	Processing bool   // true once the engine is post-processing
	Title      string // content title, empty until known
}

// Engine performs the actual transfer. Run blocks until the download
// reaches an outcome; SignalCancel is idempotent and safe to call
// concurrently with Run. A cancelled run returns a cancellation outcome
// from the errs taxonomy.
type Engine interface {
	Run(url, outputDir string, format model.Format, onProgress func(ProgressInfo)) (outputPath string, err error)
	SignalCancel()
}

// Validator checks raw input before a download is admitted
type Validator interface {
	Validate(raw string) validate.Result
}

// FileSystem answers whether the target directory is writable
type FileSystem interface {
	CanWrite(dir string) bool
}

// HistorySink records terminal downloads. Calls are fire-and-forget:
// the coordinator swallows failures.
type HistorySink interface {
	Record(entry model.HistoryEntry) error
}

// Sinks receive lifecycle events for one download. Progress calls arrive
// in engine order; exactly one of OnComplete or OnError follows and is
// always the last call. All calls happen on the worker goroutine, so
// sinks must not block for long.
type Sinks struct {
	OnProgress func(percent int, status model.Status, title string)
	OnComplete func(d model.Download)
	OnError    func(message string)
}

func (s Sinks) progress(percent int, status model.Status, title string) {
	if s.OnProgress != nil {
		s.OnProgress(percent, status, title)
	}
}

func (s Sinks) complete(d model.Download) {
	if s.OnComplete != nil {
		s.OnComplete(d)
	}
}

func (s Sinks) fail(message string) {
	if s.OnError != nil {
		s.OnError(message)
	}
}

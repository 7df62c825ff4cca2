package download

import (
	"sync"

	"github.com/sirupsen/logrus"

	"ydownloader/internal/errs"
	"ydownloader/internal/model"
)

// User-presentable admission rejection messages
const (
	MsgAlreadyInProgress = "A download is already in progress. Cancel it to start another."
	MsgFolderNotWritable = "You don't have permission to save files in this folder. Please choose another folder."
)

// Service coordinates the single active download. The mutex protects the
// current-download slot and its in-place mutation; it is never held
// across the engine call.
type Service struct {
	mu      sync.Mutex
	current *model.Download

	validator Validator
	engine    Engine
	fs        FileSystem
	history   HistorySink // optional
	log       *logrus.Entry
}

// NewService creates a coordinator. history may be nil to disable
// history recording.
func NewService(validator Validator, engine Engine, fs FileSystem, history HistorySink) *Service {
	return &Service{
		validator: validator,
		engine:    engine,
		fs:        fs,
		history:   history,
		log:       logrus.WithField("component", "download"),
	}
}

// Start admits and launches a new download. Rejections are synchronous:
// they fire sinks.OnError exactly once, mutate nothing, and return an
// admission error. On acceptance the returned snapshot is already
// registered as current and a background goroutine owns the rest of the
// lifecycle. A previous terminal download is silently superseded.
func (s *Service) Start(url, outputDir string, format model.Format, sinks Sinks) (model.Download, error) {
	if err := s.admit(url, outputDir); err != nil {
		sinks.fail(err.UserMessage)
		return model.Download{}, err
	}

	d := model.NewDownload(url, outputDir, format)

	s.mu.Lock()
	// Re-check under the lock: a concurrent Start may have won the slot
	// between admission and registration.
	if s.current != nil && s.current.Status.IsActive() {
		s.mu.Unlock()
		sinks.fail(MsgAlreadyInProgress)
		return model.Download{}, errs.AdmissionRejected("download already in progress", MsgAlreadyInProgress)
	}
	s.current = d
	snapshot := d.Snapshot()
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"id":     d.ID,
		"url":    url,
		"format": format,
	}).Info("download started")

	go s.run(d, sinks)

	return snapshot, nil
}

// admit performs the synchronous rejection checks in order: active job,
// input validation, target writability.
func (s *Service) admit(url, outputDir string) *errs.Error {
	s.mu.Lock()
	active := s.current != nil && s.current.Status.IsActive()
	s.mu.Unlock()

	if active {
		return errs.AdmissionRejected("download already in progress", MsgAlreadyInProgress)
	}

	if result := s.validator.Validate(url); !result.Accepted {
		return errs.AdmissionRejected("invalid input: "+string(result.Code), result.Message)
	}

	if !s.fs.CanWrite(outputDir) {
		return errs.AdmissionRejected("target directory not writable: "+outputDir, MsgFolderNotWritable)
	}

	return nil
}

// run executes the download on the worker goroutine
func (s *Service) run(d *model.Download, sinks Sinks) {
	s.update(d, 0, model.StatusConnecting, "")
	sinks.progress(0, model.StatusConnecting, "")

	outputPath, err := s.engine.Run(d.URL, d.OutputDir, d.Format, func(p ProgressInfo) {
		status := model.StatusDownloading
		if p.Processing {
			status = model.StatusProcessing
		}
		percent, title := s.update(d, p.Percent, status, p.Title)
		sinks.progress(percent, status, title)
	})

	switch {
	case err == nil:
		s.mu.Lock()
		d.MarkCompleted(outputPath)
		snapshot := d.Snapshot()
		s.mu.Unlock()

		s.log.WithFields(logrus.Fields{"id": d.ID, "path": outputPath}).Info("download completed")
		// History first: consumers refresh their history view on the
		// completion event, so the entry must already be stored.
		s.record(snapshot)
		sinks.complete(snapshot)

	case errs.IsCancelled(err):
		s.mu.Lock()
		d.MarkCancelled()
		snapshot := d.Snapshot()
		s.mu.Unlock()

		s.log.WithField("id", d.ID).Info("download cancelled")
		// Cancellation is an outcome, not an error.
		sinks.complete(snapshot)

	default:
		message := errs.UserMessage(err)
		s.mu.Lock()
		d.MarkError(message)
		s.mu.Unlock()

		s.log.WithFields(logrus.Fields{
			"id":   d.ID,
			"code": errs.CodeOf(err),
		}).WithError(err).Error("download failed")
		sinks.fail(message)
	}
}

// update mutates the record under the lock and returns the clamped
// percent and current title for sink delivery.
func (s *Service) update(d *model.Download, percent int, status model.Status, title string) (int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.UpdateProgress(percent, status, title)
	return d.Percent, d.Title
}

// record submits a history entry, swallowing failures
func (s *Service) record(snapshot model.Download) {
	if s.history == nil {
		return
	}
	if err := s.history.Record(model.HistoryEntryFromDownload(snapshot)); err != nil {
		s.log.WithError(err).Warn("history record failed")
	}
}

// Cancel signals cancellation of the current download. It returns false
// when there is no current download, the id does not match, or the
// download is already terminal. It does not wait for the cancelled
// state: that transition happens asynchronously on the worker.
func (s *Service) Cancel(id string) bool {
	s.mu.Lock()
	ok := s.current != nil && s.current.ID == id && s.current.Status.IsActive()
	s.mu.Unlock()

	if !ok {
		return false
	}

	s.log.WithField("id", id).Info("cancel requested")
	s.engine.SignalCancel()
	return true
}

// Current returns a consistent snapshot of the current download, if any
func (s *Service) Current() (model.Download, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return model.Download{}, false
	}
	return s.current.Snapshot(), true
}

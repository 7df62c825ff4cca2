package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Format selects the kind of output the engine should produce
type Format string

const (
	// FormatVideo downloads video with audio, merged into MP4
	FormatVideo Format = "video"

	// FormatAudio downloads audio only, converted to MP3
	FormatAudio Format = "audio"
)

// String returns the string representation of Format
func (f Format) String() string {
	return string(f)
}

// Download represents a single download through its whole lifecycle.
// ID, URL, OutputDir and Format are immutable after creation; the rest
// is mutated by the coordinator under its lock. OutputPath is unknown
// until the engine resolves it at completion.
type Download struct {
	ID          string
	URL         string
	OutputDir   string
	OutputPath  string
	Format      Format
	Status      Status
	Percent     int    // 0 to 100, clamped on every update
	Title       string // content title, set once known
	LastError   string // user-presentable message, set on error only
	StartedAt   time.Time
	CompletedAt time.Time // zero until the first terminal transition
}

// NewDownload creates a download in the pending state
func NewDownload(url, outputDir string, format Format) *Download {
	return &Download{
		ID:        uuid.NewString(),
		URL:       url,
		OutputDir: outputDir,
		Format:    format,
		Status:    StatusPending,
		StartedAt: time.Now(),
	}
}

// UpdateProgress applies a progress report. Percent is clamped to
// [0,100], the title is last-write-wins, and updates on a terminal
// download are ignored.
func (d *Download) UpdateProgress(percent int, status Status, title string) {
	if d.Status.IsTerminal() {
		return
	}
	d.Percent = ClampPercent(percent)
	d.Status = status
	if title != "" {
		d.Title = title
	}
}

// MarkCompleted records the resolved output path and moves the
// download to its successful terminal state. Terminal states are
// absorbing: a second terminal transition is ignored.
func (d *Download) MarkCompleted(outputPath string) {
	if d.Status.IsTerminal() {
		return
	}
	d.OutputPath = outputPath
	d.Status = StatusCompleted
	d.Percent = 100
	d.stampCompleted()
}

// MarkCancelled moves the download to the cancelled terminal state
func (d *Download) MarkCancelled() {
	if d.Status.IsTerminal() {
		return
	}
	d.Status = StatusCancelled
	d.stampCompleted()
}

// MarkError moves the download to the failed terminal state, keeping a
// user-presentable message.
func (d *Download) MarkError(message string) {
	if d.Status.IsTerminal() {
		return
	}
	d.Status = StatusError
	d.LastError = message
	d.stampCompleted()
}

// stampCompleted sets CompletedAt exactly once
func (d *Download) stampCompleted() {
	if d.CompletedAt.IsZero() {
		d.CompletedAt = time.Now()
	}
}

// Snapshot returns a copy safe to hand to other goroutines
func (d *Download) Snapshot() Download {
	return *d
}

// DisplayTitle returns the title if known, otherwise the URL
func (d *Download) DisplayTitle() string {
	if d.Title != "" && !strings.HasPrefix(d.Title, "http") {
		return d.Title
	}
	return d.URL
}

// ClampPercent clamps a percentage to the [0,100] range
func ClampPercent(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

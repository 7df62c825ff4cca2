package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"ydownloader/internal/config"
	"ydownloader/internal/download"
	"ydownloader/internal/history"
	"ydownloader/internal/model"
	"ydownloader/internal/platform"
	"ydownloader/internal/relay"
)

// Format selector labels
const (
	FormatLabelVideo = "Video (MP4)"
	FormatLabelAudio = "Audio (MP3)"
)

const disclaimerText = "Only download content you have the right to save.\n" +
	"You are responsible for complying with the terms of the sites you use."

// RootUI represents the main window
type RootUI struct {
	window fyne.Window

	svc     *download.Service
	queue   *relay.Queue
	cfg     *config.Store
	history *history.Store

	urlEntry     *widget.Entry
	formatSelect *widget.Select
	folderLabel  *widget.Label
	progressBar  *widget.ProgressBar
	statusLabel  *widget.Label
	actionBtn    *widget.Button
	historyList  *widget.List

	folder      string
	entries     []model.HistoryEntry
	currentID   string
	downloading bool
}

// NewRootUI creates and initializes the main window, and starts the
// goroutine that drains the event relay.
func NewRootUI(window fyne.Window, svc *download.Service, queue *relay.Queue, cfg *config.Store, hist *history.Store) *RootUI {
	ui := &RootUI{
		window:  window,
		svc:     svc,
		queue:   queue,
		cfg:     cfg,
		history: hist,
	}

	ui.folder = cfg.LastOutputFolder()
	if ui.folder == "" {
		if dir, err := platform.DownloadsDir(); err == nil {
			ui.folder = dir
		}
	}

	ui.setupUI()
	ui.loadInitialState()

	go ui.drainEvents()
	return ui
}

// setupUI creates and arranges all widgets
func (ui *RootUI) setupUI() {
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder("Paste a video URL…")

	ui.formatSelect = widget.NewSelect([]string{FormatLabelVideo, FormatLabelAudio}, func(string) {
		ui.cfg.SetDefaultFormat(ui.selectedFormat())
	})

	ui.folderLabel = widget.NewLabel("")
	ui.folderLabel.Truncation = fyne.TextTruncateEllipsis
	ui.refreshFolderLabel()
	folderBtn := widget.NewButton("Choose…", ui.onChooseFolder)

	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel("")

	ui.actionBtn = widget.NewButton("Download", ui.onAction)

	ui.historyList = widget.NewList(
		func() int { return len(ui.entries) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			if i >= len(ui.entries) {
				return
			}
			entry := ui.entries[i]
			obj.(*widget.Label).SetText(fmt.Sprintf("%s — %s", entry.Title, entry.Status))
		},
	)
	ui.historyList.OnSelected = func(i widget.ListItemID) {
		ui.historyList.UnselectAll()
		if i >= len(ui.entries) || ui.entries[i].OutputPath == "" {
			return
		}
		if err := platform.RevealInFileManager(ui.entries[i].OutputPath); err != nil {
			ui.statusLabel.SetText("Could not open the file location.")
		}
	}

	clearBtn := widget.NewButton("Clear history", ui.onClearHistory)

	form := container.NewVBox(
		ui.urlEntry,
		container.NewBorder(nil, nil, widget.NewLabel("Save to:"), folderBtn, ui.folderLabel),
		ui.formatSelect,
		ui.progressBar,
		ui.statusLabel,
		ui.actionBtn,
		widget.NewSeparator(),
		widget.NewLabel("Recent downloads"),
	)

	content := container.NewBorder(form, clearBtn, nil, nil, ui.historyList)
	ui.window.SetContent(content)
}

// loadInitialState applies persisted settings and history
func (ui *RootUI) loadInitialState() {
	if ui.cfg.DefaultFormat() == model.FormatAudio {
		ui.formatSelect.SetSelected(FormatLabelAudio)
	} else {
		ui.formatSelect.SetSelected(FormatLabelVideo)
	}

	ui.entries = ui.history.Entries()
	ui.historyList.Refresh()

	if ui.cfg.ShouldShowDisclaimer() {
		dialog.ShowConfirm("Before you start", disclaimerText, func(accepted bool) {
			if accepted {
				ui.cfg.MarkDisclaimerShown()
			}
		}, ui.window)
	}
}

// drainEvents pumps the relay into the UI thread. Events are applied
// strictly in arrival order.
func (ui *RootUI) drainEvents() {
	for {
		ev, ok := ui.queue.Next()
		if !ok {
			return
		}
		fyne.Do(func() {
			ui.applyEvent(ev)
		})
	}
}

// applyEvent updates widgets from one relay event. Runs on the UI thread.
func (ui *RootUI) applyEvent(ev relay.Event) {
	switch ev.Kind {
	case relay.KindProgress:
		ui.progressBar.SetValue(float64(ev.Percent) / 100)
		ui.statusLabel.SetText(statusText(ev.Status, ev.Title))

	case relay.KindComplete:
		if ev.Download.Status == model.StatusCancelled {
			ui.statusLabel.SetText("Download cancelled.")
		} else {
			ui.progressBar.SetValue(1)
			ui.statusLabel.SetText("Saved: " + ev.Download.OutputPath)
		}
		ui.setDownloadingState(false)
		ui.entries = ui.history.Entries()
		ui.historyList.Refresh()

	case relay.KindError:
		ui.setDownloadingState(false)
		dialog.ShowError(errors.New(ev.Message), ui.window)
	}
}

// onAction handles the download/cancel toggle button
func (ui *RootUI) onAction() {
	if ui.downloading {
		ui.svc.Cancel(ui.currentID)
		ui.statusLabel.SetText("Cancelling…")
		return
	}

	sinks := download.Sinks{
		OnProgress: ui.queue.PushProgress,
		OnComplete: ui.queue.PushComplete,
		OnError:    ui.queue.PushError,
	}

	d, err := ui.svc.Start(ui.urlEntry.Text, ui.folder, ui.selectedFormat(), sinks)
	if err != nil {
		// The rejection already reached the relay through the error sink.
		return
	}

	ui.currentID = d.ID
	ui.progressBar.SetValue(0)
	ui.statusLabel.SetText("Starting…")
	ui.setDownloadingState(true)
}

// onChooseFolder opens the folder picker and persists the selection
func (ui *RootUI) onChooseFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.folder = uri.Path()
		ui.refreshFolderLabel()
		ui.cfg.SetLastOutputFolder(ui.folder)
	}, ui.window)
}

// refreshFolderLabel shows the target folder and its free space
func (ui *RootUI) refreshFolderLabel() {
	text := ui.folder
	if free := platform.AvailableSpace(ui.folder); free > 0 {
		text += fmt.Sprintf(" (%s free)", formatBytes(free))
	}
	ui.folderLabel.SetText(text)
}

// onClearHistory empties the history panel and its backing store
func (ui *RootUI) onClearHistory() {
	if err := ui.history.Clear(); err == nil {
		ui.entries = nil
		ui.historyList.Refresh()
	}
}

// setDownloadingState toggles the controls between idle and running
func (ui *RootUI) setDownloadingState(downloading bool) {
	ui.downloading = downloading
	if downloading {
		ui.actionBtn.SetText("Cancel")
		ui.urlEntry.Disable()
		ui.formatSelect.Disable()
	} else {
		ui.actionBtn.SetText("Download")
		ui.urlEntry.Enable()
		ui.formatSelect.Enable()
		ui.currentID = ""
	}
}

// selectedFormat maps the selector label to the domain format
func (ui *RootUI) selectedFormat() model.Format {
	if ui.formatSelect.Selected == FormatLabelAudio {
		return model.FormatAudio
	}
	return model.FormatVideo
}

// formatBytes renders a byte count in human units
func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

// statusText renders a one-line status for the progress area
func statusText(status model.Status, title string) string {
	var text string
	switch status {
	case model.StatusConnecting:
		text = "Connecting…"
	case model.StatusDownloading:
		text = "Downloading…"
	case model.StatusProcessing:
		text = "Processing…"
	default:
		text = string(status)
	}
	if title != "" {
		text += " " + title
	}
	return text
}

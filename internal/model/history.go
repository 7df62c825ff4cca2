package model

import "time"

// UntitledEntry is the title recorded when the engine never reported one
const UntitledEntry = "Untitled"

// HistoryEntry is an immutable snapshot of a terminal download, kept for
// the history panel. Only fields needed for display are persisted.
type HistoryEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	OutputPath  string `json:"output_path"`
	Status      string `json:"status"`
	Format      string `json:"format"`
	CompletedAt string `json:"completed_at"` // RFC 3339
}

// HistoryEntryFromDownload derives a history entry from a terminal download
func HistoryEntryFromDownload(d Download) HistoryEntry {
	title := d.Title
	if title == "" {
		title = UntitledEntry
	}

	completedAt := ""
	if !d.CompletedAt.IsZero() {
		completedAt = d.CompletedAt.Format(time.RFC3339)
	}

	return HistoryEntry{
		ID:          d.ID,
		Title:       title,
		OutputPath:  d.OutputPath,
		Status:      d.Status.String(),
		Format:      d.Format.String(),
		CompletedAt: completedAt,
	}
}

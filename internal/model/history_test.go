package model

import (
	"testing"
	"time"
)

func TestHistoryEntryFromDownload(t *testing.T) {
	d := NewDownload("https://x/y", "/tmp", FormatAudio)
	d.UpdateProgress(50, StatusDownloading, "Some Track")
	d.MarkCompleted("/tmp/track.mp3")

	entry := HistoryEntryFromDownload(d.Snapshot())

	if entry.ID != d.ID {
		t.Errorf("Expected entry ID %s, got %s", d.ID, entry.ID)
	}
	if entry.Title != "Some Track" {
		t.Errorf("Expected title 'Some Track', got '%s'", entry.Title)
	}
	if entry.Status != "completed" {
		t.Errorf("Expected status 'completed', got '%s'", entry.Status)
	}
	if entry.Format != "audio" {
		t.Errorf("Expected format 'audio', got '%s'", entry.Format)
	}
	if _, err := time.Parse(time.RFC3339, entry.CompletedAt); err != nil {
		t.Errorf("Expected RFC3339 completion timestamp, got '%s'", entry.CompletedAt)
	}
}

func TestHistoryEntryFromDownload_DefaultTitle(t *testing.T) {
	d := NewDownload("https://x/y", "/tmp", FormatVideo)
	d.MarkCancelled()

	entry := HistoryEntryFromDownload(d.Snapshot())
	if entry.Title != UntitledEntry {
		t.Errorf("Expected default title '%s', got '%s'", UntitledEntry, entry.Title)
	}
}

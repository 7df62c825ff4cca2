package ui

// Package ui builds the main window on Fyne: URL input, format and
// folder selection, a single progress bar, and the download history
// panel. A background goroutine drains the event relay and applies
// updates on the UI thread in arrival order.

package model

// Status represents the lifecycle state of a download
type Status string

const (
	// StatusPending means the download is created but no work has started
	StatusPending Status = "pending"

	// StatusConnecting means the engine is being invoked
	StatusConnecting Status = "connecting"

	// StatusDownloading means the transfer is in progress
	StatusDownloading Status = "downloading"

	// StatusProcessing means post-processing (merge/transcode) is in progress
	StatusProcessing Status = "processing"

	// StatusCompleted means the download finished successfully
	StatusCompleted Status = "completed"

	// StatusCancelled means the download was cancelled by the user
	StatusCancelled Status = "cancelled"

	// StatusError means the download failed
	StatusError Status = "error"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsActive returns true if the download is in a non-terminal state
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConnecting || s == StatusDownloading || s == StatusProcessing
}

// IsTerminal returns true if no further transitions can leave this state
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusError
}

package download

// Package download implements the job lifecycle coordinator. It admits
// at most one active download, runs the engine in a background
// goroutine, relays progress to the caller's sinks in engine order, and
// routes exactly one terminal sink call per download: completion for
// success and cancellation, error for everything else.

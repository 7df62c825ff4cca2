package model

// Package model defines the domain data structures shared across the app:
// the download record, its status state machine, output formats, and
// history entries. Structures carry explicit state transitions so the
// coordinator can enforce lifecycle invariants.

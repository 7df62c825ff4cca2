package platform

// Package platform provides OS-level helpers: write-permission probing,
// free-space queries, unique filename generation, and opening finished
// downloads in the system file manager.

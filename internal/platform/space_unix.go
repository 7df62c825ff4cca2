//go:build !windows

package platform

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// AvailableSpace returns the free bytes on the volume holding dir, or 0
// if it cannot be determined.
func AvailableSpace(dir string) uint64 {
	if _, err := os.Stat(dir); err != nil {
		dir = filepath.Dir(dir)
	}

	var stat unix.Statfs_t
	if err := unix.Statfs(dir, &stat); err != nil {
		return 0
	}
	return stat.Bavail * uint64(stat.Bsize)
}

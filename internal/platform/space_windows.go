//go:build windows

package platform

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

// AvailableSpace returns the free bytes on the volume holding dir, or 0
// if it cannot be determined.
func AvailableSpace(dir string) uint64 {
	if _, err := os.Stat(dir); err != nil {
		dir = filepath.Dir(dir)
	}

	path, err := windows.UTF16PtrFromString(dir)
	if err != nil {
		return 0
	}

	var free, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(path, &free, &total, &totalFree); err != nil {
		return 0
	}
	return free
}

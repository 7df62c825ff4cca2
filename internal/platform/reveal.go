package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// RevealInFileManager opens the system file manager at the finished
// download, selecting it where the platform supports selection. On Linux
// the containing directory is opened instead, since selection is not
// standardized.
func RevealInFileManager(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", "-R", absPath).Run()
	case "windows":
		return exec.Command("explorer", "/select,", absPath).Run()
	case "linux":
		return exec.Command("xdg-open", filepath.Dir(absPath)).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

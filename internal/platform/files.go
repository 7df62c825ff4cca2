package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

const (
	writeProbeName    = ".ydownloader_write_test"
	maxFilenameLength = 200
	maxUniqueAttempts = 9999
)

// invalidFilenameChars are not allowed in filenames on at least one
// supported platform
const invalidFilenameChars = `<>:"/\|?*`

// FS implements the coordinator's filesystem capability
type FS struct{}

// CanWrite reports whether files can be created in dir, creating the
// directory first if it does not exist. The check is a real write probe,
// not a permission-bit inspection.
func (FS) CanWrite(dir string) bool {
	return CanWrite(dir)
}

// CanWrite reports whether files can be created in dir
func CanWrite(dir string) bool {
	if err := EnsureDir(dir); err != nil {
		return false
	}

	probe := filepath.Join(dir, writeProbeName)
	f, err := os.Create(probe)
	if err != nil {
		return false
	}
	f.Close()
	os.Remove(probe)
	return true
}

// EnsureDir creates the directory if it doesn't exist
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, DefaultDirPermissions)
	}
	return nil
}

// UniqueFilename returns a path in dir that does not exist yet, starting
// from base+ext and falling back to "base (1).ext", "base (2).ext", …
func UniqueFilename(dir, base, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	base = SanitizeFilename(base)

	candidate := filepath.Join(dir, base+ext)
	if !exists(candidate) {
		return candidate
	}

	for i := 1; i <= maxUniqueAttempts; i++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !exists(candidate) {
			return candidate
		}
	}

	// Pathological directory; give up on readable names.
	return filepath.Join(dir, base+"_"+uuid.NewString()[:8]+ext)
}

// SanitizeFilename strips characters that are invalid on any supported
// platform and bounds the length.
func SanitizeFilename(name string) string {
	result := strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidFilenameChars, r) {
			return '_'
		}
		return r
	}, name)

	result = strings.Trim(result, ". ")
	if len(result) > maxFilenameLength {
		result = result[:maxFilenameLength]
	}
	if result == "" {
		result = "download"
	}
	return result
}

// partialSuffixes mark the intermediate files yt-dlp leaves behind when
// a download is interrupted
var partialSuffixes = []string{".part", ".ytdl", ".temp"}

// DeletePartialFiles removes interrupted-download artifacts from dir.
// Finished files are untouched. Returns the first removal error after
// attempting every candidate.
func DeletePartialFiles(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var firstErr error
	for _, entry := range entries {
		if entry.IsDir() || !isPartialFile(entry.Name()) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func isPartialFile(name string) bool {
	for _, suffix := range partialSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// DownloadsDir returns the user's standard Downloads directory
func DownloadsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, "Downloads"), nil
}

// AppDataDir returns the directory for this app's persisted state
func AppDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(base, "ydownloader"), nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

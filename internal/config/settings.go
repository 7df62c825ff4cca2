// Package config persists user preferences between sessions: the last
// output folder, the default download format, and whether the
// first-launch disclaimer is still due. Settings live in a JSON file in
// the app data directory; a missing or corrupted file yields defaults.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"ydownloader/internal/model"
	"ydownloader/internal/platform"
)

// Settings keys
const (
	KeyLastOutputFolder = "last_output_folder"
	KeyDefaultFormat    = "default_format"
	KeyShowDisclaimer   = "show_disclaimer"
)

const settingsFileName = "config.json"

// Store manages persisted user preferences
type Store struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
	log  *logrus.Entry
}

// NewStore creates a settings store backed by path. An empty path uses
// the default location in the app data directory.
func NewStore(path string) *Store {
	if path == "" {
		if dir, err := platform.AppDataDir(); err == nil {
			path = filepath.Join(dir, settingsFileName)
		} else {
			path = settingsFileName
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault(KeyDefaultFormat, model.FormatVideo.String())
	v.SetDefault(KeyShowDisclaimer, true)

	// Missing or corrupted config falls back to defaults.
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		logrus.WithField("component", "config").WithError(err).Debug("settings not loaded, using defaults")
	}

	return &Store{
		v:    v,
		path: path,
		log:  logrus.WithField("component", "config"),
	}
}

// LastOutputFolder returns the last folder the user downloaded into, or
// "" when unset or no longer a directory.
func (s *Store) LastOutputFolder() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	folder := s.v.GetString(KeyLastOutputFolder)
	if folder == "" {
		return ""
	}
	if info, err := os.Stat(folder); err != nil || !info.IsDir() {
		return ""
	}
	return folder
}

// SetLastOutputFolder persists the selected output folder
func (s *Store) SetLastOutputFolder(folder string) {
	s.set(KeyLastOutputFolder, folder)
}

// DefaultFormat returns the preferred download format
func (s *Store) DefaultFormat() model.Format {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.v.GetString(KeyDefaultFormat) == model.FormatAudio.String() {
		return model.FormatAudio
	}
	return model.FormatVideo
}

// SetDefaultFormat persists the preferred download format
func (s *Store) SetDefaultFormat(format model.Format) {
	s.set(KeyDefaultFormat, format.String())
}

// ShouldShowDisclaimer reports whether the first-launch disclaimer is
// still due.
func (s *Store) ShouldShowDisclaimer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.GetBool(KeyShowDisclaimer)
}

// MarkDisclaimerShown records that the disclaimer was accepted
func (s *Store) MarkDisclaimerShown() {
	s.set(KeyShowDisclaimer, false)
}

func (s *Store) set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.v.Set(key, value)
	if err := os.MkdirAll(filepath.Dir(s.path), platform.DefaultDirPermissions); err != nil {
		s.log.WithError(err).Warn("settings dir not created")
		return
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		s.log.WithError(err).Warn("settings not saved")
	}
}

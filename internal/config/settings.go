package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/yt-prodl/internal/model"
	"github.com/ytget/yt-prodl/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyContainer          = "last_container"
	KeyQuality            = "last_quality"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultContainer          = model.ContainerMP4
	DefaultQuality            = model.QualityMax
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
)

// Settings manages the preferences remembered between sessions
type Settings struct {
	app        fyne.App
	defaultDir string
}

// NewSettings creates a new settings manager. defaultDir is used when no
// download directory was saved; empty means the platform default.
func NewSettings(app fyne.App, defaultDir string) *Settings {
	if defaultDir == "" {
		defaultDir = platform.GetDefaultDownloadDir()
	}
	return &Settings{app: app, defaultDir: defaultDir}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		s.SetDownloadDirectory(s.defaultDir)
		return s.defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetContainer returns the last selected container, or the default when the
// stored value is missing or no longer valid
func (s *Settings) GetContainer() model.Container {
	stored := model.ParseContainer(s.app.Preferences().String(KeyContainer))
	for _, c := range model.Containers {
		if c == stored {
			return c
		}
	}
	return DefaultContainer
}

// SetContainer remembers the selected container
func (s *Settings) SetContainer(container model.Container) {
	s.app.Preferences().SetString(KeyContainer, string(container))
}

// GetQuality returns the last selected quality, or the default
func (s *Settings) GetQuality() model.Quality {
	stored := model.ParseQuality(s.app.Preferences().String(KeyQuality))
	for _, q := range model.Qualities {
		if q == stored {
			return q
		}
	}
	return DefaultQuality
}

// SetQuality remembers the selected quality
func (s *Settings) SetQuality(quality model.Quality) {
	s.app.Preferences().SetString(KeyQuality, string(quality))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to open the folder after a successful run
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to open the folder after a successful run
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}

package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-prodl/internal/model"
	"github.com/ytget/yt-prodl/internal/platform"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, "")

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}

	if settings.defaultDir != platform.GetDefaultDownloadDir() {
		t.Errorf("Expected platform default dir, got %s", settings.defaultDir)
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, "/env/downloads")

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir != "/env/downloads" {
		t.Errorf("Expected default directory /env/downloads, got %s", dir)
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}
}

func TestContainer(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, "/tmp")

	if got := settings.GetContainer(); got != DefaultContainer {
		t.Errorf("Expected default container %s, got %s", DefaultContainer, got)
	}

	settings.SetContainer(model.ContainerAudio)
	if got := settings.GetContainer(); got != model.ContainerAudio {
		t.Errorf("Expected container %s, got %s", model.ContainerAudio, got)
	}

	// A stale value from an older version falls back to the default
	app.Preferences().SetString(KeyContainer, "MKV")
	if got := settings.GetContainer(); got != DefaultContainer {
		t.Errorf("Expected fallback container %s, got %s", DefaultContainer, got)
	}
}

func TestQuality(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, "/tmp")

	if got := settings.GetQuality(); got != DefaultQuality {
		t.Errorf("Expected default quality %s, got %s", DefaultQuality, got)
	}

	settings.SetQuality(model.Quality720p)
	if got := settings.GetQuality(); got != model.Quality720p {
		t.Errorf("Expected quality %s, got %s", model.Quality720p, got)
	}

	app.Preferences().SetString(KeyQuality, "best")
	if got := settings.GetQuality(); got != DefaultQuality {
		t.Errorf("Expected fallback quality %s, got %s", DefaultQuality, got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, "/tmp")

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "ru" {
		t.Errorf("Expected language 'ru', got %s", retrievedLang)
	}
}

func TestAutoRevealOnComplete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, "/tmp")

	if settings.GetAutoRevealOnComplete() != DefaultAutoRevealComplete {
		t.Errorf("Expected default auto reveal %v", DefaultAutoRevealComplete)
	}

	settings.SetAutoRevealOnComplete(true)
	if !settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto reveal to be enabled")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, "/tmp")

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyURL                = "url"
	KeyEnterURL           = "enter_url"
	KeyFormat             = "format"
	KeyQuality            = "quality"
	KeyQualityMax         = "quality_max"
	KeyDownloadDirectory  = "download_directory"
	KeyBrowse             = "browse"
	KeyDownload           = "download"
	KeyOpenFolder         = "open_folder"
	KeyLog                = "log"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyAutoReveal         = "auto_reveal"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyError              = "error"
	KeyPleaseEnterURL     = "please_enter_url"
	KeyInvalidURL         = "invalid_url"
	KeyBusyTitle          = "busy_title"
	KeyBusyMessage        = "busy_message"
	KeyFolderMissing      = "folder_missing"
	KeyErrorOpeningFolder = "error_opening_folder"
	KeyVP9Title           = "vp9_title"
	KeyVP9Message         = "vp9_message"
	KeyConvert            = "convert"
	KeyProfile            = "profile"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "YT ProDL",
		KeyURL:                "YouTube URL:",
		KeyEnterURL:           "https://youtube.com/watch?v=...",
		KeyFormat:             "Format:",
		KeyQuality:            "Quality:",
		KeyQualityMax:         "Maximum",
		KeyDownloadDirectory:  "Download folder:",
		KeyBrowse:             "Choose...",
		KeyDownload:           "Download",
		KeyOpenFolder:         "Open folder",
		KeyLog:                "Log:",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyAutoReveal:         "Open the folder when a download finishes",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyError:              "Error",
		KeyPleaseEnterURL:     "Paste a YouTube link.",
		KeyInvalidURL:         "Invalid URL",
		KeyBusyTitle:          "Download",
		KeyBusyMessage:        "A download is already running. Wait for it to finish.",
		KeyFolderMissing:      "The download folder does not exist.",
		KeyErrorOpeningFolder: "Error opening folder",
		KeyVP9Title:           "VP9 detected",
		KeyVP9Message:         "⚡ The video uses VP9.\nChoose a conversion:",
		KeyConvert:            "Convert",
		KeyProfile:            "Profile",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "YT ProDL",
		KeyURL:                "Ссылка YouTube:",
		KeyEnterURL:           "https://youtube.com/watch?v=...",
		KeyFormat:             "Формат:",
		KeyQuality:            "Качество:",
		KeyQualityMax:         "Максимальное",
		KeyDownloadDirectory:  "Папка загрузки:",
		KeyBrowse:             "Выбрать...",
		KeyDownload:           "Скачать",
		KeyOpenFolder:         "Открыть папку",
		KeyLog:                "Лог:",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyAutoReveal:         "Открывать папку после загрузки",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyError:              "Ошибка",
		KeyPleaseEnterURL:     "Вставь ссылку на YouTube.",
		KeyInvalidURL:         "Неверный URL",
		KeyBusyTitle:          "Загрузка",
		KeyBusyMessage:        "Загрузка уже идёт. Подожди окончания.",
		KeyFolderMissing:      "Папка загрузки не существует.",
		KeyErrorOpeningFolder: "Ошибка открытия папки",
		KeyVP9Title:           "Обнаружен VP9",
		KeyVP9Message:         "⚡ Видео в кодеке VP9.\nВыберите конвертацию:",
		KeyConvert:            "Конвертировать",
		KeyProfile:            "Профиль",
	}
}

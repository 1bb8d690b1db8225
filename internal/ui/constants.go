package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconDownload = "⬇"
)

// Window sizing
const (
	WindowWidth     float32 = 700
	WindowHeight    float32 = 500

	QualitySelectWidth float32 = 150
	LogMinHeight       float32 = 200
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 300
)

// MsgAllDone is appended to the log when a run reaches Done
const MsgAllDone = "🎉 All done!"

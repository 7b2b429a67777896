package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconLanguage = "🌐"
	IconSave     = "💾"
)

// Layout sizing
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 640

	ButtonColumnWidth float32 = 240
	PromptDialogWidth float32 = 420

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 420
)

// Language codes
const (
	LangSystem  = "system"
	LangEnglish = "en"
)

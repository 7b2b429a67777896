package config

import (
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL      = "api_base_url"
	KeyDataFile        = "data_file"
	KeyRequestTimeout  = "request_timeout_sec"
	KeyImportLimit     = "import_limit"
	KeyLanguage        = "app_language"
	KeyConfirmSaveExit = "confirm_save_on_exit"
)

// Environment variables that override preferences at startup
const (
	EnvAPIBaseURL = "VIDEO_API_BASE_URL"
	EnvDataFile   = "PLAYLISTS_FILE"
)

// Default values
const (
	DefaultAPIBaseURL        = "https://mock-youtube-api-f3d0c17f0e38.herokuapp.com/api"
	DefaultDataFile          = "playlists.json"
	DefaultRequestTimeoutSec = 30
	DefaultImportLimit       = 200
	DefaultLanguage          = "system"
	DefaultConfirmSaveExit   = true

	// DefaultRequestTimeout bounds one video API request
	DefaultRequestTimeout = DefaultRequestTimeoutSec * time.Second
)

// Limits
const (
	MinRequestTimeoutSec = 1
	MaxRequestTimeoutSec = 300
	MaxImportLimit       = 5000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
	// overrides hold session-only values keyed like preferences. They are
	// never written to the preferences store.
	overrides map[string]string
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app, overrides: make(map[string]string)}
}

// GetAPIBaseURL returns the base URL of the video API, preferring an
// environment override
func (s *Settings) GetAPIBaseURL() string {
	if v, ok := s.overrides[KeyAPIBaseURL]; ok {
		return v
	}
	return s.StoredAPIBaseURL()
}

// StoredAPIBaseURL returns the base URL saved in preferences
func (s *Settings) StoredAPIBaseURL() string {
	url := s.app.Preferences().String(KeyAPIBaseURL)
	if url == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return url
}

// SetAPIBaseURL sets the base URL of the video API
func (s *Settings) SetAPIBaseURL(url string) {
	s.app.Preferences().SetString(KeyAPIBaseURL, normalizeBaseURL(url))
}

func normalizeBaseURL(url string) string {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if url == "" {
		return DefaultAPIBaseURL
	}
	return url
}

// GetDataFile returns the playlists file path, preferring an environment
// override
func (s *Settings) GetDataFile() string {
	if v, ok := s.overrides[KeyDataFile]; ok {
		return v
	}
	return s.StoredDataFile()
}

// StoredDataFile returns the playlists file path saved in preferences
func (s *Settings) StoredDataFile() string {
	path := s.app.Preferences().String(KeyDataFile)
	if path == "" {
		s.SetDataFile(DefaultDataFile)
		return DefaultDataFile
	}
	return path
}

// SetDataFile sets the playlists file path
func (s *Settings) SetDataFile(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultDataFile
	}
	s.app.Preferences().SetString(KeyDataFile, path)
}

// GetRequestTimeoutSec returns the fetch timeout in seconds
func (s *Settings) GetRequestTimeoutSec() int {
	value := s.app.Preferences().Int(KeyRequestTimeout)
	if value <= 0 {
		s.SetRequestTimeoutSec(DefaultRequestTimeoutSec)
		return DefaultRequestTimeoutSec
	}
	return value
}

// SetRequestTimeoutSec sets the fetch timeout in seconds
func (s *Settings) SetRequestTimeoutSec(sec int) {
	if sec < MinRequestTimeoutSec {
		sec = MinRequestTimeoutSec
	}
	if sec > MaxRequestTimeoutSec {
		sec = MaxRequestTimeoutSec
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, sec)
}

// GetRequestTimeout returns the fetch timeout as a duration
func (s *Settings) GetRequestTimeout() time.Duration {
	return time.Duration(s.GetRequestTimeoutSec()) * time.Second
}

// GetImportLimit returns how many items a YouTube import fetches (0 means all)
func (s *Settings) GetImportLimit() int {
	return s.app.Preferences().IntWithFallback(KeyImportLimit, DefaultImportLimit)
}

// SetImportLimit sets the YouTube import limit
func (s *Settings) SetImportLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	if limit > MaxImportLimit {
		limit = MaxImportLimit
	}
	s.app.Preferences().SetInt(KeyImportLimit, limit)
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

// GetConfirmSaveOnExit returns whether to ask about unsaved playlists on exit
func (s *Settings) GetConfirmSaveOnExit() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmSaveExit, DefaultConfirmSaveExit)
}

// SetConfirmSaveOnExit sets whether to ask about unsaved playlists on exit
func (s *Settings) SetConfirmSaveOnExit(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmSaveExit, confirm)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// IsOverridden reports whether key currently takes its value from the
// environment
func (s *Settings) IsOverridden(key string) bool {
	_, ok := s.overrides[key]
	return ok
}

// ApplyEnvOverrides reads environment values for this session only. lookup is
// usually os.LookupEnv. Returns the names of the variables that were applied.
func (s *Settings) ApplyEnvOverrides(lookup func(string) (string, bool)) []string {
	var applied []string
	if v, ok := lookup(EnvAPIBaseURL); ok && strings.TrimSpace(v) != "" {
		s.overrides[KeyAPIBaseURL] = normalizeBaseURL(v)
		applied = append(applied, EnvAPIBaseURL)
	}
	if v, ok := lookup(EnvDataFile); ok && strings.TrimSpace(v) != "" {
		s.overrides[KeyDataFile] = strings.TrimSpace(v)
		applied = append(applied, EnvDataFile)
	}
	for _, name := range applied {
		log.Printf("config: %s overridden from environment", name)
	}
	return applied
}

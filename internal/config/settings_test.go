package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAPIBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if url := settings.GetAPIBaseURL(); url != DefaultAPIBaseURL {
		t.Errorf("Expected default base URL %s, got %s", DefaultAPIBaseURL, url)
	}

	// Trailing slash is trimmed
	settings.SetAPIBaseURL(" http://localhost:3008/api/ ")
	if url := settings.GetAPIBaseURL(); url != "http://localhost:3008/api" {
		t.Errorf("Expected trimmed base URL, got %s", url)
	}

	// Empty resets to default
	settings.SetAPIBaseURL("")
	if url := settings.GetAPIBaseURL(); url != DefaultAPIBaseURL {
		t.Errorf("Empty base URL should default to %s, got %s", DefaultAPIBaseURL, url)
	}
}

func TestDataFile(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if path := settings.GetDataFile(); path != DefaultDataFile {
		t.Errorf("Expected default data file %s, got %s", DefaultDataFile, path)
	}

	settings.SetDataFile("/custom/playlists.json")
	if path := settings.GetDataFile(); path != "/custom/playlists.json" {
		t.Errorf("Expected custom data file, got %s", path)
	}

	settings.SetDataFile("   ")
	if path := settings.GetDataFile(); path != DefaultDataFile {
		t.Errorf("Blank data file should default to %s, got %s", DefaultDataFile, path)
	}
}

func TestRequestTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if sec := settings.GetRequestTimeoutSec(); sec != DefaultRequestTimeoutSec {
		t.Errorf("Expected default timeout %d, got %d", DefaultRequestTimeoutSec, sec)
	}

	settings.SetRequestTimeoutSec(5)
	if d := settings.GetRequestTimeout(); d != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", d)
	}

	// Test boundary values
	tests := []struct {
		input    int
		expected int
	}{
		{0, MinRequestTimeoutSec},
		{-10, MinRequestTimeoutSec},
		{MaxRequestTimeoutSec + 1, MaxRequestTimeoutSec},
		{60, 60},
	}
	for _, tt := range tests {
		settings.SetRequestTimeoutSec(tt.input)
		if got := settings.GetRequestTimeoutSec(); got != tt.expected {
			t.Errorf("SetRequestTimeoutSec(%d) stored %d, expected %d", tt.input, got, tt.expected)
		}
	}
}

func TestImportLimit(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if limit := settings.GetImportLimit(); limit != DefaultImportLimit {
		t.Errorf("Expected default import limit %d, got %d", DefaultImportLimit, limit)
	}

	tests := []struct {
		input    int
		expected int
	}{
		{0, 0},
		{-1, 0},
		{50, 50},
		{MaxImportLimit + 10, MaxImportLimit},
	}
	for _, tt := range tests {
		settings.SetImportLimit(tt.input)
		if got := settings.GetImportLimit(); got != tt.expected {
			t.Errorf("SetImportLimit(%d) stored %d, expected %d", tt.input, got, tt.expected)
		}
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestConfirmSaveOnExit(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetConfirmSaveOnExit() {
		t.Error("Confirm save on exit should default to true")
	}

	settings.SetConfirmSaveOnExit(false)
	if settings.GetConfirmSaveOnExit() {
		t.Error("Confirm save on exit should be false after setting it")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantApplied int
		wantURL     string
		wantFile    string
	}{
		{
			name:     "no variables",
			env:      map[string]string{},
			wantURL:  DefaultAPIBaseURL,
			wantFile: DefaultDataFile,
		},
		{
			name:        "both variables",
			env:         map[string]string{EnvAPIBaseURL: "http://localhost:3008/api", EnvDataFile: "/tmp/p.json"},
			wantApplied: 2,
			wantURL:     "http://localhost:3008/api",
			wantFile:    "/tmp/p.json",
		},
		{
			name:        "blank values are ignored",
			env:         map[string]string{EnvAPIBaseURL: " ", EnvDataFile: "mine.json"},
			wantApplied: 1,
			wantURL:     DefaultAPIBaseURL,
			wantFile:    "mine.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := NewSettings(test.NewApp())
			lookup := func(key string) (string, bool) {
				v, ok := tt.env[key]
				return v, ok
			}

			applied := settings.ApplyEnvOverrides(lookup)
			if len(applied) != tt.wantApplied {
				t.Errorf("Expected %d overrides, got %v", tt.wantApplied, applied)
			}
			if url := settings.GetAPIBaseURL(); url != tt.wantURL {
				t.Errorf("Expected base URL %s, got %s", tt.wantURL, url)
			}
			if file := settings.GetDataFile(); file != tt.wantFile {
				t.Errorf("Expected data file %s, got %s", tt.wantFile, file)
			}
		})
	}
}

func TestApplyEnvOverrides_NotPersisted(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	settings.SetDataFile("mine.json")
	settings.SetAPIBaseURL("http://stored.test/api")

	env := map[string]string{EnvDataFile: "/tmp/scratch.json", EnvAPIBaseURL: "http://localhost:3008/api/"}
	settings.ApplyEnvOverrides(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})

	if got := settings.GetDataFile(); got != "/tmp/scratch.json" {
		t.Errorf("Expected override /tmp/scratch.json, got %s", got)
	}
	if got := settings.GetAPIBaseURL(); got != "http://localhost:3008/api" {
		t.Errorf("Expected override http://localhost:3008/api, got %s", got)
	}
	if !settings.IsOverridden(KeyDataFile) || !settings.IsOverridden(KeyAPIBaseURL) {
		t.Error("Expected both keys to be overridden")
	}
	if got := settings.StoredDataFile(); got != "mine.json" {
		t.Errorf("Expected stored data file mine.json, got %s", got)
	}

	// Next launch without the environment sees the saved preference
	next := NewSettings(app)
	next.ApplyEnvOverrides(func(string) (string, bool) { return "", false })
	if got := next.GetDataFile(); got != "mine.json" {
		t.Errorf("Expected data file mine.json, got %s", got)
	}
	if got := next.GetAPIBaseURL(); got != "http://stored.test/api" {
		t.Errorf("Expected base URL http://stored.test/api, got %s", got)
	}
	if next.IsOverridden(KeyDataFile) {
		t.Error("Expected no override without environment")
	}
}

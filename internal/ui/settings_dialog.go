package ui

import (
	"path/filepath"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-playlists/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	baseURLEntry     *widget.Entry
	baseURLHint      *widget.Label
	dataFileEntry    *widget.Entry
	dataFileHint     *widget.Label
	timeoutEntry     *widget.Entry
	importLimitEntry *widget.Entry
	confirmExitCheck *widget.Check
	languageSelect   *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs after
// the values were written to preferences.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(config.DefaultAPIBaseURL)
	sd.baseURLHint = newOverrideHint(t(KeyEnvOverride))

	// Playlists file selection
	sd.dataFileEntry = widget.NewEntry()
	sd.dataFileEntry.SetPlaceHolder(config.DefaultDataFile)
	browseBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseDirectory)
	dataFileRow := container.NewBorder(nil, nil, nil, browseBtn, sd.dataFileEntry)
	sd.dataFileHint = newOverrideHint(t(KeyEnvOverride))

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinRequestTimeoutSec) + "-" + strconv.Itoa(config.MaxRequestTimeoutSec))

	sd.importLimitEntry = widget.NewEntry()
	sd.importLimitEntry.SetPlaceHolder(strconv.Itoa(config.DefaultImportLimit))

	sd.confirmExitCheck = widget.NewCheck(t(KeyConfirmSaveOnExit), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyAPIBaseURL)+":"),
		sd.baseURLEntry,
		sd.baseURLHint,

		widget.NewLabel(t(KeyDataFile)+":"),
		dataFileRow,
		sd.dataFileHint,

		widget.NewLabel(t(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewLabel(t(KeyImportLimit)+":"),
		sd.importLimitEntry,

		widget.NewSeparator(),
		sd.confirmExitCheck,

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func newOverrideHint(text string) *widget.Label {
	hint := widget.NewLabel(text)
	hint.Importance = widget.WarningImportance
	hint.Hide()
	return hint
}

func setVisible(obj fyne.CanvasObject, visible bool) {
	if visible {
		obj.Show()
	} else {
		obj.Hide()
	}
}

// loadCurrentSettings loads the saved preferences into the UI. Environment
// overrides are only hinted at so saving never persists them.
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.baseURLEntry.SetText(sd.settings.StoredAPIBaseURL())
	sd.dataFileEntry.SetText(sd.settings.StoredDataFile())
	setVisible(sd.baseURLHint, sd.settings.IsOverridden(config.KeyAPIBaseURL))
	setVisible(sd.dataFileHint, sd.settings.IsOverridden(config.KeyDataFile))
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetRequestTimeoutSec()))
	sd.importLimitEntry.SetText(strconv.Itoa(sd.settings.GetImportLimit()))
	sd.confirmExitCheck.SetChecked(sd.settings.GetConfirmSaveOnExit())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory picks a folder and keeps the current file name
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		name := filepath.Base(sd.dataFileEntry.Text)
		if name == "." || name == string(filepath.Separator) {
			name = config.DefaultDataFile
		}
		sd.dataFileEntry.SetText(filepath.Join(uri.Path(), name))
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetAPIBaseURL(sd.baseURLEntry.Text)
	sd.settings.SetDataFile(sd.dataFileEntry.Text)

	if sec, err := strconv.Atoi(sd.timeoutEntry.Text); err == nil {
		sd.settings.SetRequestTimeoutSec(sec)
	}
	if limit, err := strconv.Atoi(sd.importLimitEntry.Text); err == nil {
		sd.settings.SetImportLimit(limit)
	}

	sd.settings.SetConfirmSaveOnExit(sd.confirmExitCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved)+"\n"+sd.localization.GetText(KeyRestartRequired),
		sd.window,
	)
}

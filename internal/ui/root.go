package ui

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-playlists/internal/actions"
	"github.com/ytget/video-playlists/internal/config"
	"github.com/ytget/video-playlists/internal/model"
	"github.com/ytget/video-playlists/internal/platform"
	"github.com/ytget/video-playlists/internal/playlist"
)

// actionButton binds a localized label to a controller action
type actionButton struct {
	key    string
	action func(context.Context)
	busy   bool
	button *widget.Button
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	controller   *actions.Controller
	notifier     *DialogNotifier
	display      *TextDisplay

	buttons   []*actionButton
	exitBtn   *widget.Button
	pageLabel *widget.Label
	saveLabel *widget.Label
	leftPanel fyne.CanvasObject

	exitDialog *dialog.CustomDialog

	// Busy indicator for network-bound actions
	busyMu      sync.Mutex
	busyCount   int
	busyLabel   *widget.Label
	busySpinner *widget.ProgressBarInfinite
	busyBox     *fyne.Container
}

// exitChoice is the answer to the unsaved playlists prompt
type exitChoice int

const (
	exitSave exitChoice = iota
	exitDiscard
	exitCancel
)

// NewRootUI creates and initializes the main UI. importer may be nil when
// YouTube import is unavailable.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, store *playlist.Store, fetcher actions.Fetcher, importer actions.Importer) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		notifier:     NewDialogNotifier(window),
		display:      NewTextDisplay(),
	}

	deps := actions.Deps{
		Store:    store,
		Fetcher:  fetcher,
		Prompter: NewDialogPrompter(window, localization),
		Notifier: ui,
		Display:  ui.display,
		Importer: importer,
	}
	ui.controller = actions.NewController(deps)
	ui.controller.SetFetchTimeout(settings.GetRequestTimeout())
	ui.controller.SetPageCallback(ui.onPageChanged)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetCloseIntercept(ui.onExit)

	ui.setupUI()
	return ui
}

// Controller returns the actions controller driven by the buttons
func (ui *RootUI) Controller() *actions.Controller {
	return ui.controller
}

// Notify shows a notice and refreshes the save indicator. Every mutating
// action ends with a notice.
func (ui *RootUI) Notify(kind model.NoticeKind, title, message string) {
	ui.notifier.Notify(kind, title, message)
	ui.refreshSaveState()
}

// ShowLoadError reports a playlists file that could not be read at startup
func (ui *RootUI) ShowLoadError(err error) {
	ui.notifier.Notify(model.NoticeError, actions.TitleError,
		fmt.Sprintf("%s: %v", ui.localization.GetText(KeyLoadFailed), err))
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	c := ui.controller
	ui.buttons = []*actionButton{
		{key: KeyFetchVideos, action: c.FetchAndDisplay, busy: true},
		{key: KeySearchVideos, action: c.Search},
		{key: KeyCreatePlaylist, action: c.CreatePlaylist},
		{key: KeyAddToPlaylist, action: c.AddToPlaylist},
		{key: KeyRemoveFromPlaylist, action: c.RemoveFromPlaylist},
		{key: KeyDisplayPlaylist, action: c.DisplayPlaylist},
		{key: KeyDisplayAllPlaylists, action: c.DisplayAllPlaylists},
		{key: KeyNextPage, action: c.NextPage, busy: true},
		{key: KeyPrevPage, action: c.PrevPage, busy: true},
		{key: KeySavePlaylists, action: c.Save},
		{key: KeyDeletePlaylist, action: c.DeletePlaylist},
		{key: KeyImportYouTube, action: c.ImportYouTubePlaylist},
	}

	column := container.NewVBox()
	for _, b := range ui.buttons {
		b.button = widget.NewButton(ui.localization.GetText(b.key), ui.runner(b))
		column.Add(b.button)
	}
	ui.exitBtn = widget.NewButton(ui.localization.GetText(KeyExit), ui.onExit)
	ui.exitBtn.Importance = widget.LowImportance
	column.Add(widget.NewSeparator())
	column.Add(ui.exitBtn)

	// Page label and busy indicator under the buttons
	ui.pageLabel = widget.NewLabel("")
	ui.pageLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.pageLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyPageFormat), c.Page()))

	key, importance := saveState(c.Store().Dirty())
	ui.saveLabel = widget.NewLabel(ui.localization.GetText(key))
	ui.saveLabel.Importance = importance

	ui.busyLabel = widget.NewLabel(ui.localization.GetText(KeyWorking))
	ui.busySpinner = widget.NewProgressBarInfinite()
	ui.busyBox = container.NewVBox(ui.busySpinner, ui.busyLabel)
	ui.busyBox.Hide()

	status := container.NewVBox(container.NewHBox(ui.pageLabel, ui.saveLabel), ui.busyBox)
	left := container.NewBorder(nil, status, nil, nil, column)

	// Keeps the column wide enough for the longest translated label
	minWidth := canvas.NewRectangle(color.Transparent)
	minWidth.SetMinSize(fyne.NewSize(ButtonColumnWidth, 0))
	ui.leftPanel = container.NewStack(minWidth, left)

	split := container.NewHSplit(ui.leftPanel, ui.display.Container())
	split.SetOffset(0.28)

	ui.window.SetContent(split)

	// UI setup completed
	log.Printf("UI setup completed successfully")
}

// runner starts an action on its own goroutine so dialogs and fetches never
// block the Fyne event loop
func (ui *RootUI) runner(b *actionButton) func() {
	return func() {
		log.Printf("action: %s", b.key)
		go func() {
			if b.busy {
				ui.setBusy(true)
				defer ui.setBusy(false)
			}
			b.action(context.Background())
		}()
	}
}

// setBusy shows the spinner while at least one network action runs
func (ui *RootUI) setBusy(busy bool) {
	ui.busyMu.Lock()
	if busy {
		ui.busyCount++
	} else if ui.busyCount > 0 {
		ui.busyCount--
	}
	visible := ui.busyCount > 0
	ui.busyMu.Unlock()

	fyne.Do(func() {
		if visible {
			ui.busyBox.Show()
		} else {
			ui.busyBox.Hide()
		}
	})
}

// saveState picks the indicator text and colour for the store state
func saveState(dirty bool) (string, widget.Importance) {
	if dirty {
		return KeyUnsavedState, widget.WarningImportance
	}
	return KeySavedState, widget.SuccessImportance
}

// refreshSaveState shows whether playlists changed since the last save
func (ui *RootUI) refreshSaveState() {
	key, importance := saveState(ui.controller.Store().Dirty())
	text := ui.localization.GetText(key)
	fyne.Do(func() {
		ui.saveLabel.Importance = importance
		ui.saveLabel.SetText(text)
	})
}

// menuLabel prefixes a localized menu label with its icon
func (ui *RootUI) menuLabel(icon, key string) string {
	return icon + " " + ui.localization.GetText(key)
}

// onPageChanged updates the page label
func (ui *RootUI) onPageChanged(page int) {
	text := fmt.Sprintf(ui.localization.GetText(KeyPageFormat), page)
	fyne.Do(func() {
		ui.pageLabel.SetText(text)
	})
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// File menu items
	settingsItem := fyne.NewMenuItem(ui.menuLabel(IconSettings, KeySettings), ui.onShowSettings)
	saveItem := fyne.NewMenuItem(ui.menuLabel(IconSave, KeySavePlaylists), func() {
		go ui.controller.Save(context.Background())
	})
	revealItem := fyne.NewMenuItem(ui.menuLabel(IconFolder, KeyRevealDataFile), ui.onRevealDataFile)
	exitItem := fyne.NewMenuItem(ui.localization.GetText(KeyExit), ui.onExit)
	exitItem.IsQuit = true

	// Language submenu
	languageMenu := fyne.NewMenu(ui.menuLabel(IconLanguage, KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for _, code := range ui.localization.sortedLanguageCodes() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile),
			settingsItem,
			saveItem,
			revealItem,
			fyne.NewMenuItemSeparator(),
			exitItem,
		),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	for _, b := range ui.buttons {
		b.button.SetText(ui.localization.GetText(b.key))
	}
	ui.exitBtn.SetText(ui.localization.GetText(KeyExit))
	ui.busyLabel.SetText(ui.localization.GetText(KeyWorking))
	ui.onPageChanged(ui.controller.Page())
	ui.refreshSaveState()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.controller.SetFetchTimeout(ui.settings.GetRequestTimeout())
		ui.onLanguageChange(ui.settings.GetLanguage())
	})
}

// onRevealDataFile reveals the playlists file in the system file manager
func (ui *RootUI) onRevealDataFile() {
	path := ui.controller.Store().Path()
	if err := platform.OpenFileInManager(path); err != nil {
		log.Printf("Error revealing file %s: %v", path, err)
		ui.notifier.Notify(model.NoticeError, actions.TitleError,
			ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error())
		return
	}
	log.Printf("File revealed successfully: %s", path)
}

// onExit quits, asking to save first when playlists changed since the last save
func (ui *RootUI) onExit() {
	store := ui.controller.Store()
	if !store.Dirty() || !ui.settings.GetConfirmSaveOnExit() {
		ui.app.Quit()
		return
	}
	ui.showExitDialog()
}

// showExitDialog offers Save, Don't Save and Cancel
func (ui *RootUI) showExitDialog() {
	t := ui.localization.GetText
	d := dialog.NewCustomWithoutButtons(t(KeyUnsavedTitle), widget.NewLabel(t(KeyUnsavedMessage)), ui.window)

	answer := func(choice exitChoice) func() {
		return func() {
			d.Hide()
			if ui.resolveExit(choice) {
				ui.app.Quit()
			}
		}
	}
	saveBtn := widget.NewButton(t(KeySave), answer(exitSave))
	saveBtn.Importance = widget.HighImportance
	d.SetButtons([]fyne.CanvasObject{
		widget.NewButton(t(KeyCancel), answer(exitCancel)),
		widget.NewButton(t(KeyDiscard), answer(exitDiscard)),
		saveBtn,
	})

	ui.exitDialog = d
	d.Show()
}

// resolveExit applies the exit answer and reports whether to quit. A failed
// save keeps the window open.
func (ui *RootUI) resolveExit(choice exitChoice) bool {
	switch choice {
	case exitSave:
		if err := ui.controller.Store().Save(); err != nil {
			log.Printf("save on exit failed: %v", err)
			ui.Notify(model.NoticeError, actions.TitleError, fmt.Sprintf(actions.MsgSaveFailed, err))
			return false
		}
		return true
	case exitDiscard:
		log.Printf("exit without saving")
		return true
	default:
		return false
	}
}

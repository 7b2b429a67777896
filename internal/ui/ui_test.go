package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-playlists/internal/actions"
	"github.com/ytget/video-playlists/internal/config"
	"github.com/ytget/video-playlists/internal/model"
	"github.com/ytget/video-playlists/internal/playlist"
)

type stubFetcher struct{}

func (stubFetcher) FetchVideos(ctx context.Context, page int) (*model.VideoPage, error) {
	return &model.VideoPage{Videos: []model.Video{}}, nil
}

func newTestRootUI(t *testing.T) *RootUI {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	window := app.NewWindow("test")
	store := playlist.NewStore(filepath.Join(t.TempDir(), "playlists.json"))
	return NewRootUI(window, app, config.NewSettings(app), store, stubFetcher{}, nil)
}

func TestNewRootUI(t *testing.T) {
	ui := newTestRootUI(t)

	if len(ui.buttons) != 12 {
		t.Errorf("Expected 12 action buttons, got %d", len(ui.buttons))
	}
	for _, b := range ui.buttons {
		if b.button == nil || b.button.Text != ui.localization.GetText(b.key) {
			t.Errorf("Button %s not initialized with its label", b.key)
		}
	}
	if ui.pageLabel.Text != "Page 1" {
		t.Errorf("Expected page label 'Page 1', got %q", ui.pageLabel.Text)
	}
	if ui.window.Content() == nil {
		t.Error("Window content should be set")
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui := newTestRootUI(t)

	ui.onLanguageChange("ru")

	if got := ui.settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected stored language ru, got %s", got)
	}
	if ui.exitBtn.Text != "Выход" {
		t.Errorf("Expected translated exit button, got %s", ui.exitBtn.Text)
	}
	if ui.buttons[0].button.Text != "Загрузить и показать видео" {
		t.Errorf("Expected translated fetch button, got %s", ui.buttons[0].button.Text)
	}
}

func TestTextDisplay(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	d := NewTextDisplay()
	if d.Text() != "" {
		t.Errorf("Expected empty display, got %q", d.Text())
	}

	d.Show("Playlist: Favorites\n\n")
	if d.Text() != "Playlist: Favorites\n\n" {
		t.Errorf("Unexpected display text %q", d.Text())
	}
	if d.Container() == nil {
		t.Error("Container should not be nil")
	}
}

func TestRootUI_BusyCounter(t *testing.T) {
	ui := newTestRootUI(t)

	ui.setBusy(true)
	ui.setBusy(true)
	ui.setBusy(false)
	if ui.busyCount != 1 {
		t.Errorf("Expected busy count 1, got %d", ui.busyCount)
	}

	ui.setBusy(false)
	ui.setBusy(false)
	if ui.busyCount != 0 {
		t.Errorf("Busy count should not go negative, got %d", ui.busyCount)
	}
}

func TestRootUI_SaveIndicator(t *testing.T) {
	ui := newTestRootUI(t)

	if ui.saveLabel.Text != "All changes saved" || ui.saveLabel.Importance != widget.SuccessImportance {
		t.Errorf("Expected saved state, got %q (%v)", ui.saveLabel.Text, ui.saveLabel.Importance)
	}

	store := ui.controller.Store()
	if err := store.Create("Favorites"); err != nil {
		t.Fatal(err)
	}
	ui.Notify(model.NoticeInfo, actions.TitleInfo, "created")
	if ui.saveLabel.Text != "Unsaved changes" || ui.saveLabel.Importance != widget.WarningImportance {
		t.Errorf("Expected unsaved state, got %q (%v)", ui.saveLabel.Text, ui.saveLabel.Importance)
	}

	ui.onLanguageChange("pt")
	if ui.saveLabel.Text != "Alterações não salvas" {
		t.Errorf("Expected translated indicator, got %q", ui.saveLabel.Text)
	}

	if err := store.Save(); err != nil {
		t.Fatal(err)
	}
	ui.Notify(model.NoticeInfo, actions.TitleInfo, "saved")
	if ui.saveLabel.Importance != widget.SuccessImportance {
		t.Errorf("Expected saved colour after save, got %v", ui.saveLabel.Importance)
	}
}

func TestCompactTheme_SaveStateColours(t *testing.T) {
	th := NewCompactTheme()

	if got := th.Color(theme.ColorNameSuccess, theme.VariantLight); got != savedColor {
		t.Errorf("Expected saved colour, got %v", got)
	}
	if got := th.Color(theme.ColorNameWarning, theme.VariantDark); got != unsavedColor {
		t.Errorf("Expected unsaved colour, got %v", got)
	}
	if got := th.Size(theme.SizeNamePadding); got != 3 {
		t.Errorf("Expected compact padding 3, got %v", got)
	}
}

func TestRootUI_LayoutAndMenuIcons(t *testing.T) {
	ui := newTestRootUI(t)

	if w := ui.leftPanel.MinSize().Width; w < ButtonColumnWidth {
		t.Errorf("Expected button column at least %v wide, got %v", ButtonColumnWidth, w)
	}

	menu := ui.window.MainMenu()
	if menu == nil || len(menu.Items) != 2 {
		t.Fatal("Expected file and language menus")
	}
	labels := []string{}
	for _, item := range menu.Items[0].Items {
		labels = append(labels, item.Label)
	}
	joined := strings.Join(labels, "|")
	for _, icon := range []string{IconSettings, IconSave, IconFolder} {
		if !strings.Contains(joined, icon) {
			t.Errorf("Expected %s in file menu %q", icon, joined)
		}
	}
	if !strings.HasPrefix(menu.Items[1].Label, IconLanguage) {
		t.Errorf("Expected language menu icon, got %q", menu.Items[1].Label)
	}
}

func TestRootUI_ExitChoices(t *testing.T) {
	tests := []struct {
		name      string
		choice    exitChoice
		wantQuit  bool
		wantDirty bool
		wantFile  bool
	}{
		{"save writes and quits", exitSave, true, false, true},
		{"discard quits without writing", exitDiscard, true, true, false},
		{"cancel stays open", exitCancel, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := newTestRootUI(t)
			store := ui.controller.Store()
			if err := store.Create("Favorites"); err != nil {
				t.Fatal(err)
			}

			if got := ui.resolveExit(tt.choice); got != tt.wantQuit {
				t.Errorf("Expected quit %v, got %v", tt.wantQuit, got)
			}
			if store.Dirty() != tt.wantDirty {
				t.Errorf("Expected dirty %v, got %v", tt.wantDirty, store.Dirty())
			}
			_, err := os.Stat(store.Path())
			if (err == nil) != tt.wantFile {
				t.Errorf("Expected file written %v, stat error %v", tt.wantFile, err)
			}
		})
	}
}

func TestRootUI_ExitSaveFailureStaysOpen(t *testing.T) {
	ui := newTestRootUI(t)
	store := ui.controller.Store()
	// A directory in place of the file makes the save fail
	if err := os.MkdirAll(store.Path(), 0755); err != nil {
		t.Fatal(err)
	}
	if err := store.Create("Favorites"); err != nil {
		t.Fatal(err)
	}

	if ui.resolveExit(exitSave) {
		t.Error("Expected the window to stay open after a failed save")
	}
	if !store.Dirty() {
		t.Error("Store should still be dirty")
	}
}

func TestRootUI_ExitAsksOnlyWhenDirty(t *testing.T) {
	ui := newTestRootUI(t)
	if err := ui.controller.Store().Create("Favorites"); err != nil {
		t.Fatal(err)
	}

	ui.onExit()
	if ui.exitDialog == nil {
		t.Fatal("Expected the unsaved playlists dialog")
	}
}

func TestSettingsDialog_KeepsOverridesOutOfPreferences(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	window := app.NewWindow("test")

	settings := config.NewSettings(app)
	settings.SetDataFile("mine.json")
	settings.ApplyEnvOverrides(func(key string) (string, bool) {
		if key == config.EnvDataFile {
			return "/tmp/scratch.json", true
		}
		return "", false
	})

	sd := NewSettingsDialog(settings, NewLocalization(), window)
	sd.loadCurrentSettings()
	if sd.dataFileEntry.Text != "mine.json" {
		t.Errorf("Expected stored data file in the form, got %q", sd.dataFileEntry.Text)
	}
	if !sd.dataFileHint.Visible() || sd.baseURLHint.Visible() {
		t.Error("Expected only the data file override hint")
	}

	sd.onSave(true)
	if got := config.NewSettings(app).GetDataFile(); got != "mine.json" {
		t.Errorf("Expected preference mine.json after save, got %s", got)
	}
	if got := settings.GetDataFile(); got != "/tmp/scratch.json" {
		t.Errorf("Expected session override to stay active, got %s", got)
	}
}

package main

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/ytget/video-playlists/internal/config"
	"github.com/ytget/video-playlists/internal/platform"
	"github.com/ytget/video-playlists/internal/playlist"
	"github.com/ytget/video-playlists/internal/ui"
	"github.com/ytget/video-playlists/internal/videoapi"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.video-playlists"
	AppName = "Video Playlist App"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	// Environment values apply to this session only
	settings.ApplyEnvOverrides(os.LookupEnv)

	dataFile, err := platform.ResolveDataFile(settings.GetDataFile())
	if err != nil {
		log.Printf("resolve data file: %v", err)
		dataFile = config.DefaultDataFile
	}
	// Open returns a usable store even on error: an unreadable file is
	// moved aside or saving is locked
	store, loadErr := playlist.Open(dataFile)
	if loadErr != nil {
		log.Printf("failed to load playlists: %v", loadErr)
	}

	client := videoapi.NewWith(videoapi.Config{
		BaseURL: settings.GetAPIBaseURL(),
		Timeout: settings.GetRequestTimeout(),
	})

	importer := platform.NewYouTubeImporter()
	importer.SetLimit(settings.GetImportLimit())

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, settings, store, client, importer)
	if loadErr != nil {
		rootUI.ShowLoadError(loadErr)
	}

	// Show and run
	myWindow.ShowAndRun()
}

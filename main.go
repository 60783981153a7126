package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/Leonardo-Martella/youtube-dl-gui/internal/config"
	"github.com/Leonardo-Martella/youtube-dl-gui/internal/download"
	"github.com/Leonardo-Martella/youtube-dl-gui/internal/platform"
	"github.com/Leonardo-Martella/youtube-dl-gui/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.leonardomartella.youtube-dl-gui"
	AppName = "YouTube-DL GUI"

	WindowWidth  = 700
	WindowHeight = 500
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	store := config.NewStore(myApp)
	settings := store.Load()
	if err := platform.CreateDirectoryIfNotExists(settings.OutputDirectory); err != nil {
		log.Printf("failed to ensure output dir: %v", err)
	}

	binPath, err := platform.FindDownloader()
	if err != nil {
		log.Printf("downloader binary not found on PATH: %v", err)
	}

	downloadSvc := download.NewService(binPath, store)
	downloadSvc.Start()
	defer downloadSvc.Stop()

	// Create and setup UI
	ui.NewRootUI(myWindow, store, downloadSvc)

	// Show and run
	myWindow.ShowAndRun()
}

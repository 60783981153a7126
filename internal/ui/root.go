package ui

import (
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/Leonardo-Martella/youtube-dl-gui/internal/config"
	"github.com/Leonardo-Martella/youtube-dl-gui/internal/download"
	"github.com/Leonardo-Martella/youtube-dl-gui/internal/model"
)

// RootUI represents the main window: URL input, per-download options,
// and the visible download queue.
type RootUI struct {
	window      fyne.Window
	store       *config.Store
	downloadSvc download.Downloader
	prefsDialog *PreferencesDialog

	urlEntry       *widget.Entry
	addBtn         *widget.Button
	mediaTypeRadio *widget.RadioGroup
	playlistCheck  *widget.Check
	queueList      *widget.List

	queueItems []string
	queueMutex sync.Mutex

	stopPolling chan struct{}
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, store *config.Store, downloadSvc download.Downloader) *RootUI {
	ui := &RootUI{
		window:      window,
		store:       store,
		downloadSvc: downloadSvc,
		stopPolling: make(chan struct{}),
	}

	ui.prefsDialog = NewPreferencesDialog(store, window)
	ui.createUI()
	ui.setupMenu()

	go ui.pollFinishedTasks()
	window.SetOnClosed(func() { close(ui.stopPolling) })

	return ui
}

// createUI builds the main window layout
func (ui *RootUI) createUI() {
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder("Video or playlist URL")
	ui.urlEntry.OnSubmitted = func(string) { ui.onAddToQueue() }

	ui.addBtn = widget.NewButton("Add to download queue", ui.onAddToQueue)
	ui.addBtn.Importance = widget.HighImportance

	ui.mediaTypeRadio = widget.NewRadioGroup([]string{MediaTypeVideo, MediaTypeAudio}, nil)
	ui.mediaTypeRadio.Horizontal = true
	ui.mediaTypeRadio.SetSelected(MediaTypeVideo)

	ui.playlistCheck = widget.NewCheck("Download playlists", nil)
	ui.playlistCheck.SetChecked(ui.store.Load().DownloadPlaylist)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowPreferences)
	settingsBtn.Importance = widget.LowImportance

	ui.queueList = widget.NewList(
		func() int {
			ui.queueMutex.Lock()
			defer ui.queueMutex.Unlock()
			return len(ui.queueItems)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			ui.queueMutex.Lock()
			defer ui.queueMutex.Unlock()
			if int(id) < len(ui.queueItems) {
				obj.(*widget.Label).SetText(ui.queueItems[id])
			}
		},
	)

	topPanel := container.NewBorder(nil, nil, settingsBtn, ui.addBtn, ui.urlEntry)
	optionsPanel := container.NewHBox(ui.mediaTypeRadio, ui.playlistCheck)

	content := container.NewBorder(
		container.NewVBox(topPanel, optionsPanel, widget.NewLabel("Download queue:")),
		nil, nil, nil,
		ui.queueList,
	)

	ui.window.SetContent(content)
}

// setupMenu builds the application menu
func (ui *RootUI) setupMenu() {
	preferencesItem := fyne.NewMenuItem("Preferences", ui.onShowPreferences)
	quitItem := fyne.NewMenuItem("Quit", func() { ui.window.Close() })

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File", preferencesItem, fyne.NewMenuItemSeparator(), quitItem),
	)
	ui.window.SetMainMenu(mainMenu)
}

// onAddToQueue enqueues the entered URL with the selected options
func (ui *RootUI) onAddToQueue() {
	url := strings.TrimSpace(ui.urlEntry.Text)
	if url == "" {
		return
	}

	opts := model.RequestOptions{
		AudioOnly:        ui.mediaTypeRadio.Selected == MediaTypeAudio,
		DownloadPlaylist: ui.playlistCheck.Checked,
	}

	task, err := ui.downloadSvc.Enqueue(url, opts)
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}

	ui.queueMutex.Lock()
	ui.queueItems = append(ui.queueItems, task.QueueLabel())
	ui.queueMutex.Unlock()

	ui.queueList.Refresh()
	ui.urlEntry.SetText("")
}

// onShowPreferences opens the preferences dialog
func (ui *RootUI) onShowPreferences() {
	ui.prefsDialog.Show()
}

// pollFinishedTasks periodically removes finished downloads from the
// head of the visible queue, mirroring the FIFO processing order.
func (ui *RootUI) pollFinishedTasks() {
	ticker := time.NewTicker(QueuePollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ui.stopPolling:
			return
		case <-ticker.C:
			done := ui.downloadSvc.TasksDone(true)
			if done == 0 {
				continue
			}

			ui.queueMutex.Lock()
			if done > len(ui.queueItems) {
				done = len(ui.queueItems)
			}
			ui.queueItems = ui.queueItems[done:]
			ui.queueMutex.Unlock()

			fyne.Do(func() { ui.queueList.Refresh() })
		}
	}
}

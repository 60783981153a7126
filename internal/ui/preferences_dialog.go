package ui

import (
	"errors"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/Leonardo-Martella/youtube-dl-gui/internal/config"
)

// DialogState tracks the preferences dialog lifecycle. The dialog moves
// from Closed to Open-Clean when shown, to Open-Dirty on the first edit,
// and back to Closed on save, cancel, or reset.
type DialogState int

const (
	StateClosed DialogState = iota
	StateOpenClean
	StateOpenDirty
)

// String returns the string representation of DialogState
func (ds DialogState) String() string {
	switch ds {
	case StateClosed:
		return "Closed"
	case StateOpenClean:
		return "Open-Clean"
	case StateOpenDirty:
		return "Open-Dirty"
	default:
		return "Unknown"
	}
}

// PreferencesDialog represents the modal preferences dialog
type PreferencesDialog struct {
	store  *config.Store
	window fyne.Window
	dialog *dialog.ConfirmDialog

	state   DialogState
	loading bool // suppresses dirty marking while widgets are populated

	// UI components
	outputDirEntry   *widget.Entry
	templateEntry    *widget.Entry
	timeoutEntry     *widget.Entry
	verifySSLCheck   *widget.Check
	videoFormatEntry *widget.Entry
	audioFormatEntry *widget.Entry
	playlistCheck    *widget.Check
	geoBypassSelect  *widget.Select
	ageLimitSelect   *widget.Select
	cookieFileEntry  *widget.Entry
	errorLabel       *widget.Label
}

// NewPreferencesDialog creates a new preferences dialog bound to the store
func NewPreferencesDialog(store *config.Store, window fyne.Window) *PreferencesDialog {
	pd := &PreferencesDialog{
		store:  store,
		window: window,
		state:  StateClosed,
	}

	pd.createUI()
	return pd
}

// State returns the current dialog state
func (pd *PreferencesDialog) State() DialogState {
	return pd.state
}

// Show populates the form from the store and displays the dialog
func (pd *PreferencesDialog) Show() {
	pd.loadCurrentSettings()
	pd.errorLabel.Hide()
	pd.state = StateOpenClean
	pd.dialog.Show()
}

// createUI creates the preferences dialog UI
func (pd *PreferencesDialog) createUI() {
	pd.outputDirEntry = widget.NewEntry()
	pd.outputDirEntry.SetPlaceHolder("Output directory path")
	pd.outputDirEntry.OnChanged = func(string) { pd.markDirty() }

	browseDirBtn := widget.NewButton("Browse", pd.onBrowseDirectory)
	outputDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, pd.outputDirEntry)

	pd.templateEntry = widget.NewEntry()
	pd.templateEntry.SetPlaceHolder(config.DefaultNameTemplate)
	pd.templateEntry.OnChanged = func(string) { pd.markDirty() }

	pd.timeoutEntry = widget.NewEntry()
	pd.timeoutEntry.SetPlaceHolder("Seconds")
	pd.timeoutEntry.OnChanged = func(string) { pd.markDirty() }

	pd.verifySSLCheck = widget.NewCheck("Verify SSL certificates", func(bool) { pd.markDirty() })

	pd.videoFormatEntry = widget.NewEntry()
	pd.videoFormatEntry.SetPlaceHolder("Video format selector expression")
	pd.videoFormatEntry.OnChanged = func(string) { pd.markDirty() }

	pd.audioFormatEntry = widget.NewEntry()
	pd.audioFormatEntry.SetPlaceHolder("Audio format selector expression")
	pd.audioFormatEntry.OnChanged = func(string) { pd.markDirty() }

	pd.playlistCheck = widget.NewCheck("Download playlists by default", func(bool) { pd.markDirty() })

	pd.geoBypassSelect = widget.NewSelect(config.GeoBypassOptions(), func(string) { pd.markDirty() })
	pd.ageLimitSelect = widget.NewSelect(config.AgeLimitWarningOptions(), func(string) { pd.markDirty() })

	pd.cookieFileEntry = widget.NewEntry()
	pd.cookieFileEntry.SetPlaceHolder("Cookie file (optional)")
	pd.cookieFileEntry.OnChanged = func(string) { pd.markDirty() }

	pd.errorLabel = widget.NewLabel("")
	pd.errorLabel.Importance = widget.DangerImportance
	pd.errorLabel.Hide()

	resetBtn := widget.NewButton("Restore Defaults", pd.onResetDefaults)

	form := container.NewVBox(
		widget.NewLabel("Download Preferences"),
		widget.NewSeparator(),

		widget.NewLabel("Output Directory:"),
		outputDirRow,

		widget.NewLabel("Name Template:"),
		pd.templateEntry,

		widget.NewLabel("Socket Timeout:"),
		pd.timeoutEntry,

		pd.verifySSLCheck,

		widget.NewLabel("Video Format Selector:"),
		pd.videoFormatEntry,

		widget.NewLabel("Audio Format Selector:"),
		pd.audioFormatEntry,

		pd.playlistCheck,

		widget.NewSeparator(),
		widget.NewLabel("Restrictions"),
		widget.NewSeparator(),

		widget.NewLabel("Geo Bypass:"),
		pd.geoBypassSelect,

		widget.NewLabel("Age Limit Warning:"),
		pd.ageLimitSelect,

		widget.NewLabel("Cookie File:"),
		pd.cookieFileEntry,

		pd.errorLabel,
		resetBtn,
	)

	pd.dialog = dialog.NewCustomConfirm(
		"Preferences",
		"OK",
		"Cancel",
		container.NewVScroll(form),
		pd.onConfirm,
		pd.window,
	)

	pd.dialog.Resize(fyne.NewSize(PreferencesDialogWidth, PreferencesDialogHeight))
}

// loadCurrentSettings loads current settings into the form
func (pd *PreferencesDialog) loadCurrentSettings() {
	pd.loading = true
	defer func() { pd.loading = false }()

	settings := pd.store.Load()
	pd.outputDirEntry.SetText(settings.OutputDirectory)
	pd.templateEntry.SetText(settings.NameTemplate)
	pd.timeoutEntry.SetText(strconv.Itoa(settings.TimeoutSeconds))
	pd.verifySSLCheck.SetChecked(settings.VerifySSL)
	pd.videoFormatEntry.SetText(settings.VideoFormatSelector)
	pd.audioFormatEntry.SetText(settings.AudioFormatSelector)
	pd.playlistCheck.SetChecked(settings.DownloadPlaylist)
	pd.geoBypassSelect.SetSelected(string(settings.GeoBypass))
	pd.ageLimitSelect.SetSelected(string(settings.AgeLimitWarning))
	pd.cookieFileEntry.SetText(settings.CookieFile)
}

// markDirty records that the form no longer matches the store
func (pd *PreferencesDialog) markDirty() {
	if pd.loading || pd.state == StateClosed {
		return
	}
	pd.state = StateOpenDirty
}

// onBrowseDirectory handles output directory browsing
func (pd *PreferencesDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		pd.outputDirEntry.SetText(uri.Path())
	}, pd.window)
}

// onConfirm handles the OK and Cancel buttons. On a validation failure
// the dialog reopens with the edits and the error kept visible.
func (pd *PreferencesDialog) onConfirm(confirmed bool) {
	if !confirmed {
		// Cancel: nothing propagates to the store
		pd.state = StateClosed
		return
	}

	candidate, err := pd.candidateFromForm()
	if err == nil {
		err = pd.store.Commit(candidate)
	}
	if err != nil {
		pd.showValidationError(err)
		return
	}

	pd.state = StateClosed
}

// onResetDefaults resets the store and closes immediately, bypassing
// validation and any unsaved edits.
func (pd *PreferencesDialog) onResetDefaults() {
	pd.store.ResetToDefaults()
	pd.state = StateClosed
	pd.dialog.Hide()
}

// candidateFromForm builds a Settings candidate from the widget values.
// A non-numeric timeout is reported the same way as a store validation
// failure so the user sees one kind of inline error.
func (pd *PreferencesDialog) candidateFromForm() (config.Settings, error) {
	timeout, err := strconv.Atoi(strings.TrimSpace(pd.timeoutEntry.Text))
	if err != nil {
		return config.Settings{}, &config.ValidationError{
			Field:  config.KeyTimeoutSeconds,
			Reason: "must be a non-negative integer",
		}
	}

	return config.Settings{
		OutputDirectory:     pd.outputDirEntry.Text,
		NameTemplate:        pd.templateEntry.Text,
		TimeoutSeconds:      timeout,
		VerifySSL:           pd.verifySSLCheck.Checked,
		VideoFormatSelector: pd.videoFormatEntry.Text,
		AudioFormatSelector: pd.audioFormatEntry.Text,
		DownloadPlaylist:    pd.playlistCheck.Checked,
		GeoBypass:           config.GeoBypassMode(pd.geoBypassSelect.Selected),
		AgeLimitWarning:     config.AgeLimitWarning(pd.ageLimitSelect.Selected),
		CookieFile:          pd.cookieFileEntry.Text,
	}, nil
}

// showValidationError surfaces a commit failure inline and keeps the
// dialog open with the rejected values still in the form.
func (pd *PreferencesDialog) showValidationError(err error) {
	var validationErr *config.ValidationError
	if errors.As(err, &validationErr) {
		pd.errorLabel.SetText(validationErr.Error())
	} else {
		pd.errorLabel.SetText(err.Error())
	}
	pd.errorLabel.Show()

	// The confirm dialog hides itself before the callback runs; reopen
	// it with the widgets untouched so the user can fix or cancel.
	pd.state = StateOpenDirty
	pd.dialog.Show()
}

package ui

import (
	"strconv"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/Leonardo-Martella/youtube-dl-gui/internal/config"
)

func newTestDialog() (*config.Store, *PreferencesDialog) {
	app := test.NewApp()
	store := config.NewStore(app)
	window := test.NewWindow(nil)
	return store, NewPreferencesDialog(store, window)
}

func TestDialogStartsClosed(t *testing.T) {
	_, pd := newTestDialog()

	if pd.State() != StateClosed {
		t.Errorf("Expected initial state Closed, got %s", pd.State())
	}
}

func TestShowPopulatesFormAndStaysClean(t *testing.T) {
	store, pd := newTestDialog()

	custom := config.Defaults()
	custom.OutputDirectory = "/custom/output"
	custom.TimeoutSeconds = 42
	custom.VerifySSL = false
	if err := store.Commit(custom); err != nil {
		t.Fatalf("Expected commit to succeed, got: %v", err)
	}

	pd.Show()

	if pd.State() != StateOpenClean {
		t.Errorf("Expected state Open-Clean after Show, got %s", pd.State())
	}
	if pd.outputDirEntry.Text != "/custom/output" {
		t.Errorf("Expected output directory field /custom/output, got %s", pd.outputDirEntry.Text)
	}
	if pd.timeoutEntry.Text != "42" {
		t.Errorf("Expected timeout field 42, got %s", pd.timeoutEntry.Text)
	}
	if pd.verifySSLCheck.Checked {
		t.Error("Expected SSL check unchecked")
	}
}

func TestEditMarksDialogDirty(t *testing.T) {
	_, pd := newTestDialog()

	pd.Show()
	pd.outputDirEntry.SetText("/elsewhere")

	if pd.State() != StateOpenDirty {
		t.Errorf("Expected state Open-Dirty after edit, got %s", pd.State())
	}
}

func TestConfirmCommitsAndCloses(t *testing.T) {
	store, pd := newTestDialog()

	pd.Show()
	pd.outputDirEntry.SetText("/confirmed/output")
	pd.timeoutEntry.SetText("15")
	pd.onConfirm(true)

	if pd.State() != StateClosed {
		t.Errorf("Expected state Closed after confirm, got %s", pd.State())
	}

	loaded := store.Load()
	if loaded.OutputDirectory != "/confirmed/output" {
		t.Errorf("Expected committed output directory, got %s", loaded.OutputDirectory)
	}
	if loaded.TimeoutSeconds != 15 {
		t.Errorf("Expected committed timeout 15, got %d", loaded.TimeoutSeconds)
	}
}

func TestCancelDiscardsEdits(t *testing.T) {
	store, pd := newTestDialog()
	before := store.Load()

	pd.Show()
	pd.outputDirEntry.SetText("/never/persisted")
	pd.onConfirm(false)

	if pd.State() != StateClosed {
		t.Errorf("Expected state Closed after cancel, got %s", pd.State())
	}

	after := store.Load()
	if after != before {
		t.Errorf("Cancel must not change persisted settings.\nBefore %+v\nafter  %+v", before, after)
	}
}

func TestNegativeTimeoutKeepsDialogOpen(t *testing.T) {
	store, pd := newTestDialog()
	before := store.Load()

	pd.Show()
	pd.timeoutEntry.SetText("-5")
	pd.onConfirm(true)

	if pd.State() != StateOpenDirty {
		t.Errorf("Expected state Open-Dirty after rejected confirm, got %s", pd.State())
	}
	if pd.errorLabel.Hidden {
		t.Error("Validation error should be visible")
	}
	if pd.timeoutEntry.Text != "-5" {
		t.Errorf("Rejected value should stay in the form, got %s", pd.timeoutEntry.Text)
	}

	after := store.Load()
	if after != before {
		t.Errorf("Failed confirm must not change persisted settings.\nBefore %+v\nafter  %+v", before, after)
	}
}

func TestNonNumericTimeoutKeepsDialogOpen(t *testing.T) {
	store, pd := newTestDialog()
	before := store.Load()

	pd.Show()
	pd.timeoutEntry.SetText("soon")
	pd.onConfirm(true)

	if pd.State() != StateOpenDirty {
		t.Errorf("Expected state Open-Dirty after rejected confirm, got %s", pd.State())
	}

	if after := store.Load(); after != before {
		t.Error("Failed confirm must not change persisted settings")
	}
}

func TestResetOverridesUnsavedEditsAndCloses(t *testing.T) {
	store, pd := newTestDialog()

	custom := config.Defaults()
	custom.TimeoutSeconds = 99
	if err := store.Commit(custom); err != nil {
		t.Fatalf("Expected commit to succeed, got: %v", err)
	}

	pd.Show()
	pd.outputDirEntry.SetText("/unsaved/edit")
	pd.timeoutEntry.SetText("not even a number")
	pd.onResetDefaults()

	if pd.State() != StateClosed {
		t.Errorf("Expected state Closed after reset, got %s", pd.State())
	}

	loaded := store.Load()
	if loaded != config.Defaults() {
		t.Errorf("Reset should persist the default record, got %+v", loaded)
	}
}

func TestShowAfterFailedConfirmReloadsCleanly(t *testing.T) {
	store, pd := newTestDialog()

	pd.Show()
	pd.timeoutEntry.SetText("-1")
	pd.onConfirm(true)

	// Reopening reloads from the store and clears the error
	pd.Show()

	if pd.State() != StateOpenClean {
		t.Errorf("Expected state Open-Clean after reopen, got %s", pd.State())
	}
	if !pd.errorLabel.Hidden {
		t.Error("Error label should be hidden after reopen")
	}

	expected := strconv.Itoa(store.Load().TimeoutSeconds)
	if pd.timeoutEntry.Text != expected {
		t.Errorf("Expected timeout field %s, got %s", expected, pd.timeoutEntry.Text)
	}
}

func TestDialogStateString(t *testing.T) {
	tests := []struct {
		state    DialogState
		expected string
	}{
		{StateClosed, "Closed"},
		{StateOpenClean, "Open-Clean"},
		{StateOpenDirty, "Open-Dirty"},
		{DialogState(42), "Unknown"},
	}

	for _, test := range tests {
		if test.state.String() != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, test.state.String())
		}
	}
}

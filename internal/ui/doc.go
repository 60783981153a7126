package ui

// Package ui contains the Fyne-based desktop user interface: the main
// window with the download queue and the modal preferences dialog that
// mediates between the user and the settings store.

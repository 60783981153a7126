package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Media type labels for the download option radio group
const (
	MediaTypeVideo = "Video"
	MediaTypeAudio = "Audio"
)

// Queue polling
const (
	// How often the queue list is reconciled with finished downloads
	QueuePollInterval = 500 * time.Millisecond
)

// Dialog sizing
const (
	PreferencesDialogWidth  float32 = 560
	PreferencesDialogHeight float32 = 520
)

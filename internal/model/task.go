package model

import (
	"strings"
	"time"
)

// RequestOptions carries the per-download choices made in the main
// window, as opposed to the durable preferences.
type RequestOptions struct {
	AudioOnly        bool // download audio stream only
	DownloadPlaylist bool // download the whole playlist if the URL points at one
}

// DownloadTask represents a single download task
type DownloadTask struct {
	ID         string
	URL        string
	Options    RequestOptions
	Status     TaskStatus
	Attempts   int       // number of times the downloader was launched
	LastError  string    // last error message if any
	EnqueuedAt time.Time // when the task was added to the queue
	FinishedAt time.Time // when the task finished
}

// QueueLabel returns the string shown for this task in the queue list:
// the URL, annotated with any non-default request options.
func (dt *DownloadTask) QueueLabel() string {
	var info []string
	if dt.Options.AudioOnly {
		info = append(info, "audio-only")
	}
	if dt.Options.DownloadPlaylist {
		info = append(info, "will download playlist if available")
	}
	if len(info) == 0 {
		return dt.URL
	}
	return dt.URL + " (" + strings.Join(info, ", ") + ")"
}

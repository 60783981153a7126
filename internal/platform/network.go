package platform

import (
	"net/http"
	"os/exec"
	"time"
)

// Connectivity probe constants
const (
	ProbeURL     = "http://www.google.com"
	ProbeTimeout = 3 * time.Second
)

// Candidate names for the external downloader binary, in order of preference
var DownloaderCandidates = []string{"youtube-dl", "yt-dlp"}

// FindDownloader resolves the external downloader binary from PATH.
// youtube-dl is preferred, yt-dlp accepted as a drop-in replacement.
func FindDownloader() (string, error) {
	var lastErr error
	for _, name := range DownloaderCandidates {
		path, err := exec.LookPath(name)
		if err == nil {
			return path, nil
		}
		lastErr = err
	}
	return "", lastErr
}

// InternetAvailable reports whether an internet connection is available.
// It is used to distinguish connectivity failures (wait and retry) from
// bad URLs or options (skip the item).
func InternetAvailable() bool {
	client := &http.Client{Timeout: ProbeTimeout}
	resp, err := client.Head(ProbeURL)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}

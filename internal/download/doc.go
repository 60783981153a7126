package download

// Package download implements the download queue on top of the external
// youtube-dl binary. It maps persisted settings into command-line
// arguments, runs one download at a time on a worker goroutine, retries
// while the network is down, and reports task updates to the UI.

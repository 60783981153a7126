package platform

// Package platform contains OS integration and external tooling glue:
// filesystem helpers, resolution of the youtube-dl binary, and the
// connectivity probe used by the download retry logic.

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Subdirectory of the Downloads folder used for downloaded media
const (
	OutputSubdirectory = "YoutubeDL"
)

// DefaultOutputDir returns the default directory for downloaded files:
// a dedicated subdirectory of the user's Downloads folder.
func DefaultOutputDir() (string, error) {
	downloadsDir, err := homeDownloadsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(downloadsDir, OutputSubdirectory), nil
}

// homeDownloadsDir returns the standard Downloads directory for the user
func homeDownloadsDir() (string, error) {
	// For Android, use the external storage Downloads directory so files
	// are visible to other apps.
	isAndroid := runtime.GOOS == "android" ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != ""

	if isAndroid {
		return "/sdcard/Download", nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Downloads"), nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

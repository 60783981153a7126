package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultOutputDir(t *testing.T) {
	dir, err := DefaultOutputDir()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if dir == "" {
		t.Error("Default output directory should not be empty")
	}

	if filepath.Base(dir) != OutputSubdirectory {
		t.Errorf("Expected directory to end with %s, got %s", OutputSubdirectory, dir)
	}

	if !strings.Contains(dir, "Download") {
		t.Errorf("Expected directory under Downloads, got %s", dir)
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := filepath.Join(t.TempDir(), "nested", "output")

	if err := CreateDirectoryIfNotExists(tempDir); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	info, err := os.Stat(tempDir)
	if err != nil {
		t.Fatalf("Directory should exist after creation: %v", err)
	}
	if !info.IsDir() {
		t.Error("Created path should be a directory")
	}

	// Second call on an existing directory is a no-op
	if err := CreateDirectoryIfNotExists(tempDir); err != nil {
		t.Errorf("Expected no error for existing directory, got: %v", err)
	}
}

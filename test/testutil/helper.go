package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// WriteRecordingHelper writes a wallpaper helper script into dir that stores
// its first argument in a file. It returns the script and the record file.
// Tests using it are skipped on Windows.
func WriteRecordingHelper(t *testing.T, dir string) (script, record string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("helper scripts need a POSIX shell")
	}

	script = filepath.Join(dir, "set-wallpaper.sh")
	record = filepath.Join(dir, "wallpaper")
	content := fmt.Sprintf("#!/bin/sh\nprintf '%%s' \"$1\" > %q\n", record)
	if err := os.WriteFile(script, []byte(content), 0o755); err != nil {
		t.Fatalf("Failed to write helper script: %v", err)
	}
	return script, record
}

// ReadRecord returns what the recording helper stored, or "" if it never ran.
func ReadRecord(t *testing.T, record string) string {
	t.Helper()
	data, err := os.ReadFile(record)
	if os.IsNotExist(err) {
		return ""
	}
	if err != nil {
		t.Fatalf("Failed to read helper record: %v", err)
	}
	return string(data)
}

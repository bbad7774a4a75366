package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmod(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "settings.yaml")
	if err := os.WriteFile(file, []byte("version: \"2.0.0\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(tmp, "issues")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		mode os.FileMode
	}{
		{"file", file, 0600},
		{"dir", dir, 0700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Chmod(tt.path, tt.mode); err != nil {
				t.Fatalf("Chmod failed: %v", err)
			}
			if runtime.GOOS == "windows" {
				return
			}
			info, err := os.Stat(tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if perm := info.Mode().Perm(); perm != tt.mode {
				t.Errorf("permissions = %o, want %o", perm, tt.mode)
			}
		})
	}
}

func TestExistingPerm_Fallback(t *testing.T) {
	tmp := t.TempDir()

	missing := filepath.Join(tmp, "missing.md")
	if got := ExistingPerm(missing, 0600); got != 0600 {
		t.Errorf("ExistingPerm(missing) = %o, want fallback 0600", got)
	}

	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not tracked on Windows")
	}

	note := filepath.Join(tmp, "note.md")
	if err := os.WriteFile(note, []byte("# Note\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(note, 0640); err != nil {
		t.Fatal(err)
	}
	if got := ExistingPerm(note, 0600); got != 0640 {
		t.Errorf("ExistingPerm(note) = %o, want 0640", got)
	}
}

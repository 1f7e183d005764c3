package utils

import (
	"path/filepath"
	"testing"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"main.rs", "main.lua"},
		{"dir/prog.ru", "dir/prog.lua"},
		{"noext", "noext.lua"},
		{"archive.tar.rs", "archive.tar.lua"},
		{"already.lua", "already.lua.lua"},
	}
	for _, tt := range tests {
		if got := DefaultOutputPath(tt.in); got != tt.want {
			t.Errorf("DefaultOutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetPathInfo(t *testing.T) {
	dir := t.TempDir()
	full, parent, err := GetPathInfo(filepath.Join(dir, "sub", "..", "main.rs"))
	if err != nil {
		t.Fatalf("GetPathInfo failed: %v", err)
	}
	if want := filepath.Join(dir, "main.rs"); full != want {
		t.Errorf("fullPath = %q, want %q", full, want)
	}
	if parent != dir {
		t.Errorf("parentDir = %q, want %q", parent, dir)
	}
}

package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestPreprocessedPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"main.c", "main.i"},
		{"src/main.c", filepath.Join("src", "main.i")},
		{"/tmp/a.b.c", filepath.Join("/tmp", "a.b.i")},
		{"noext", "noext.i"},
	}
	for _, tt := range tests {
		if got := PreprocessedPath(tt.in); got != tt.want {
			t.Errorf("PreprocessedPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetPathInfo(t *testing.T) {
	dir := t.TempDir()
	full, parent, err := GetPathInfo(filepath.Join(dir, "x", "..", "prog.c"))
	if err != nil {
		t.Fatalf("GetPathInfo failed: %v", err)
	}
	if full != filepath.Join(dir, "prog.c") {
		t.Errorf("fullPath = %q", full)
	}
	if parent != dir {
		t.Errorf("parentDir = %q, want %q", parent, dir)
	}
}

func TestReadAndDeleteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.i")
	if err := os.WriteFile(path, []byte("int main(void) { return 0; }\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got != "int main(void) { return 0; }\n" {
		t.Errorf("ReadFile = %q", got)
	}

	if err := DeleteFile(path); err != nil {
		t.Fatalf("DeleteFile failed: %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("file still exists after DeleteFile: %v", err)
	}
	if _, err := ReadFile(path); err == nil {
		t.Error("ReadFile on a deleted file should fail")
	}
}

package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDirectoryIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureDirectory(dir, 0o700); err != nil {
		t.Fatalf("EnsureDirectory() error = %v", err)
	}
	if err := EnsureDirectory(dir, 0o700); err != nil {
		t.Fatalf("EnsureDirectory() second call error = %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected directory at %s", dir)
	}
}

func TestEnsureUniqueFilePathReturnsBaseWhenFree(t *testing.T) {
	base := filepath.Join(t.TempDir(), "spec.md")
	if got := EnsureUniqueFilePath(base); got != base {
		t.Fatalf("EnsureUniqueFilePath() = %q, want %q", got, base)
	}
}

func TestEnsureUniqueFilePathSkipsOccupiedCandidates(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "spec.md")
	for _, name := range []string{"spec.md", "spec-1.md", "spec-2.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}
	want := filepath.Join(dir, "spec-3.md")
	if got := EnsureUniqueFilePath(base); got != want {
		t.Fatalf("EnsureUniqueFilePath() = %q, want %q", got, want)
	}
}

func TestEnsureUniqueFilePathWithoutExtension(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "notes")
	if err := os.WriteFile(base, []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	want := filepath.Join(dir, "notes-1")
	if got := EnsureUniqueFilePath(base); got != want {
		t.Fatalf("EnsureUniqueFilePath() = %q, want %q", got, want)
	}
}

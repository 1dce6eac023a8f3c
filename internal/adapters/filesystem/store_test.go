package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"marknote/internal/application"
)

func TestStore_RootURI(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if store.RootURI() != dir {
		t.Errorf("expected %q, got %q", dir, store.RootURI())
	}
}

func TestStore_ListFiltersNonNotes(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "keep.md"), "a")
	mustWrite(t, filepath.Join(dir, "keep.txt"), "b")
	mustWrite(t, filepath.Join(dir, "skip.pdf"), "c")
	mustWrite(t, filepath.Join(dir, ".hidden.md"), "d")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store := NewStore(dir)
	entries, err := store.List(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"sub", "keep.md", "keep.txt"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d: %+v", len(want), len(entries), entries)
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, entries[i].Name)
		}
	}
	if !entries[0].IsDir {
		t.Error("expected directory first")
	}
}

func TestStore_ListFillsSize(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "note.md"), "12345")

	store := NewStore(dir)
	entries, err := store.List(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Size != 5 {
		t.Errorf("expected size 5, got %d", entries[0].Size)
	}
	if entries[0].ModTime.IsZero() {
		t.Error("expected a mod time")
	}
}

func TestStore_ReadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	path := filepath.Join(dir, "note.md")

	if err := store.Write(path, "# Hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := store.Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "# Hello" {
		t.Errorf("expected %q, got %q", "# Hello", content)
	}
}

func TestStore_ReadMissingFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	_, err := store.Read(filepath.Join(dir, "ghost.md"))
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_CreateNote(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	uri, err := store.CreateNote(dir, "fresh.md", "body")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uri != filepath.Join(dir, "fresh.md") {
		t.Errorf("unexpected address %q", uri)
	}

	content, err := store.Read(uri)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "body" {
		t.Errorf("expected %q, got %q", "body", content)
	}
}

func TestStore_CreateFolder(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	uri, err := store.CreateFolder(dir, "Projects")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(uri)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}

	// Creating it again is fine.
	if _, err := store.CreateFolder(dir, "Projects"); err != nil {
		t.Errorf("expected re-create to succeed, got %v", err)
	}
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	path := filepath.Join(dir, "gone.md")
	mustWrite(t, path, "x")

	if err := store.Delete(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Delete(path); err != nil {
		t.Fatalf("expected second delete to be a no-op, got %v", err)
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

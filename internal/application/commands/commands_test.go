package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"marknote/internal/application"
	"marknote/internal/domain"
)

// fakeStore is a minimal in-memory NoteStore for exercising commands.
type fakeStore struct {
	notes   map[string]string
	readErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{notes: make(map[string]string)}
}

func (f *fakeStore) RootURI() string { return "fake://root" }

func (f *fakeStore) List(folderURI string) ([]domain.Entry, error) {
	var entries []domain.Entry
	for uri, content := range f.notes {
		entries = append(entries, domain.Entry{
			Name: strings.TrimPrefix(uri, "fake://"),
			URI:  uri,
			Size: int64(len(content)),
		})
	}
	domain.SortEntries(entries)
	return entries, nil
}

func (f *fakeStore) Read(fileURI string) (string, error) {
	if f.readErr != nil {
		return "", f.readErr
	}
	content, ok := f.notes[fileURI]
	if !ok {
		return "", application.ErrNotFound
	}
	return content, nil
}

func (f *fakeStore) Write(fileURI, content string) error {
	f.notes[fileURI] = content
	return nil
}

func (f *fakeStore) CreateNote(folderURI, name, content string) (string, error) {
	uri := "fake://" + name
	f.notes[uri] = content
	return uri, nil
}

func (f *fakeStore) CreateFolder(parentURI, name string) (string, error) {
	return "fake://" + name, nil
}

func (f *fakeStore) Delete(fileURI string) error {
	delete(f.notes, fileURI)
	return nil
}

func TestOpenNoteCommand(t *testing.T) {
	store := newFakeStore()
	store.notes["fake://a.md"] = "hello"

	result, err := NewOpenNoteCommand(store, "fake://a.md").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Content != "hello" {
		t.Errorf("expected %q, got %q", "hello", result.Content)
	}
	if result.URI != "fake://a.md" {
		t.Errorf("expected address to round-trip, got %q", result.URI)
	}
}

func TestOpenNoteCommand_Validation(t *testing.T) {
	_, err := NewOpenNoteCommand(newFakeStore(), "").Execute(context.Background())

	var vErr *application.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.Field != "uri" {
		t.Errorf("expected field uri, got %q", vErr.Field)
	}
}

func TestOpenNoteCommand_WrapsNotFound(t *testing.T) {
	_, err := NewOpenNoteCommand(newFakeStore(), "fake://ghost.md").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveNoteCommand(t *testing.T) {
	store := newFakeStore()

	err := NewSaveNoteCommand(store, "fake://a.md", "body").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.notes["fake://a.md"] != "body" {
		t.Errorf("expected write-through, got %q", store.notes["fake://a.md"])
	}
}

func TestSaveNoteCommand_RequiresAddress(t *testing.T) {
	err := NewSaveNoteCommand(newFakeStore(), "", "body").Execute(context.Background())

	var vErr *application.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateNoteCommand_Validation(t *testing.T) {
	tests := []struct {
		name      string
		folderURI string
		noteName  string
		wantField string
	}{
		{"missing folder", "", "a.md", "folderURI"},
		{"missing name", "fake://root", "", "name"},
		{"whitespace name", "fake://root", "   ", "name"},
		{"bad extension", "fake://root", "binary.exe", "name"},
		{"no extension", "fake://root", "plain", "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewCreateNoteCommand(newFakeStore(), tt.folderURI, tt.noteName, "")
			err := cmd.Validate()

			var vErr *application.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, vErr.Field)
			}
		})
	}
}

func TestCreateNoteCommand_AcceptsNoteExtensions(t *testing.T) {
	for _, name := range []string{"a.md", "b.txt", "c.markdown", "d.text", "E.MD"} {
		cmd := NewCreateNoteCommand(newFakeStore(), "fake://root", name, "")
		if err := cmd.Validate(); err != nil {
			t.Errorf("expected %q to validate, got %v", name, err)
		}
	}
}

func TestCreateNoteCommand_Execute(t *testing.T) {
	store := newFakeStore()

	result, err := NewCreateNoteCommand(store, store.RootURI(), "a.md", "hi").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.URI != "fake://a.md" {
		t.Errorf("unexpected address %q", result.URI)
	}
	if !strings.Contains(result.Message, "a.md") {
		t.Errorf("expected message to name the note, got %q", result.Message)
	}
	if store.notes["fake://a.md"] != "hi" {
		t.Error("expected note content stored")
	}
}

func TestCreateFolderCommand_Validation(t *testing.T) {
	tests := []struct {
		name       string
		parentURI  string
		folderName string
		wantField  string
	}{
		{"missing parent", "", "Work", "parentURI"},
		{"missing name", "fake://root", "", "name"},
		{"slash in name", "fake://root", "a/b", "name"},
		{"backslash in name", "fake://root", `a\b`, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewCreateFolderCommand(newFakeStore(), tt.parentURI, tt.folderName)
			err := cmd.Validate()

			var vErr *application.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, vErr.Field)
			}
		})
	}
}

func TestDeleteNoteCommand(t *testing.T) {
	store := newFakeStore()
	store.notes["fake://a.md"] = "x"

	err := NewDeleteNoteCommand(store, "fake://a.md").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.notes["fake://a.md"]; ok {
		t.Error("expected note removed")
	}
}

func TestListFolderCommand(t *testing.T) {
	store := newFakeStore()
	store.notes["fake://b.md"] = "x"
	store.notes["fake://a.md"] = "y"

	entries, err := NewListFolderCommand(store, store.RootURI()).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "a.md" || entries[1].Name != "b.md" {
		t.Errorf("expected sorted listing, got %+v", entries)
	}
}

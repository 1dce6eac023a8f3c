package virtualfs

import (
	"errors"
	"testing"

	"marknote/internal/application"
)

func TestNoteURIRoundTrip(t *testing.T) {
	uri := NoteURI("ideas.md")
	if uri != "virtual://file/ideas.md" {
		t.Errorf("unexpected address %q", uri)
	}

	name, err := ParseNoteURI(uri)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "ideas.md" {
		t.Errorf("expected %q, got %q", "ideas.md", name)
	}
}

func TestFolderURIRoundTrip(t *testing.T) {
	uri := FolderURI("root")
	if uri != "virtual://root" {
		t.Errorf("unexpected address %q", uri)
	}

	id, err := ParseFolderURI(uri)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "root" {
		t.Errorf("expected %q, got %q", "root", id)
	}
}

func TestParseNoteURI_Invalid(t *testing.T) {
	tests := []string{
		"virtual://root",
		"virtual://file/",
		"file/ideas.md",
		"/home/user/ideas.md",
		"",
	}

	for _, uri := range tests {
		if _, err := ParseNoteURI(uri); !errors.Is(err, application.ErrInvalidAddress) {
			t.Errorf("ParseNoteURI(%q): expected ErrInvalidAddress, got %v", uri, err)
		}
	}
}

func TestParseFolderURI_Invalid(t *testing.T) {
	tests := []string{
		"virtual://file/ideas.md",
		"virtual://",
		"root",
		"",
	}

	for _, uri := range tests {
		if _, err := ParseFolderURI(uri); !errors.Is(err, application.ErrInvalidAddress) {
			t.Errorf("ParseFolderURI(%q): expected ErrInvalidAddress, got %v", uri, err)
		}
	}
}

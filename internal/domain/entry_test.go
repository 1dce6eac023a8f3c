package domain

import "testing"

func TestIsNoteFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"readme.md", true},
		{"notes.txt", true},
		{"long.markdown", true},
		{"plain.text", true},
		{"UPPER.MD", true},
		{"script.sh", false},
		{"noext", false},
		{".md", true},
	}

	for _, tt := range tests {
		if got := IsNoteFile(tt.name); got != tt.want {
			t.Errorf("IsNoteFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSortEntries_DirectoriesFirst(t *testing.T) {
	entries := []Entry{
		{Name: "b.md"},
		{Name: "Archive", IsDir: true},
		{Name: "A.md"},
		{Name: "zettel", IsDir: true},
	}

	SortEntries(entries)

	want := []string{"Archive", "zettel", "A.md", "b.md"}
	for i, name := range want {
		if entries[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, entries[i].Name)
		}
	}
}

func TestSortEntries_CaseInsensitiveWithinGroup(t *testing.T) {
	entries := []Entry{
		{Name: "banana.md"},
		{Name: "Apple.md"},
		{Name: "cherry.md"},
	}

	SortEntries(entries)

	want := []string{"Apple.md", "banana.md", "cherry.md"}
	for i, name := range want {
		if entries[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, entries[i].Name)
		}
	}
}

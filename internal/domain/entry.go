package domain

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NoteExtensions lists the file extensions treated as editable notes.
var NoteExtensions = []string{".md", ".txt", ".markdown", ".text"}

// IsNoteFile reports whether name carries one of the recognized note
// extensions.
func IsNoteFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range NoteExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Entry is a single row in a directory listing, from either backend.
type Entry struct {
	Name    string
	URI     string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

var entryCollator = collate.New(language.Und, collate.Loose)

// SortEntries orders a listing the way the sidebar shows it: directories
// before files, each group collated by name.
func SortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		return entryCollator.CompareString(a.Name, b.Name)
	})
}

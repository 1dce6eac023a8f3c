package config

import "os"

const (
	// DefaultNotesPath is the native backend's default note directory.
	DefaultNotesPath = "~/Documents/notes"

	// BackendNative stores notes on the real filesystem.
	BackendNative = "native"
	// BackendVirtual stores notes in the key-value-backed virtual filesystem.
	BackendVirtual = "virtual"
)

// NotesPath returns the note directory from MARKNOTE_ROOT,
// falling back to DefaultNotesPath.
func NotesPath() string {
	if env := os.Getenv("MARKNOTE_ROOT"); env != "" {
		return env
	}
	return DefaultNotesPath
}

// Backend returns the configured store backend from MARKNOTE_BACKEND.
// Exactly one backend is selected per process lifetime.
func Backend() string {
	if env := os.Getenv("MARKNOTE_BACKEND"); env == BackendVirtual {
		return BackendVirtual
	}
	return BackendNative
}

// StorePath returns the virtual backend's database location from
// MARKNOTE_DATA. Empty means the default under the XDG data directory.
func StorePath() string {
	return os.Getenv("MARKNOTE_DATA")
}

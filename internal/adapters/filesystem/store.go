package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"marknote/internal/application"
	"marknote/internal/domain"
	"marknote/internal/ports"
)

// Store implements ports.NoteStore against the real filesystem. Addresses
// are plain paths.
type Store struct {
	rootPath string
}

// Ensure Store implements NoteStore
var _ ports.NoteStore = (*Store)(nil)

// NewStore creates a filesystem store rooted at rootPath
func NewStore(rootPath string) *Store {
	// Expand ~ to home directory
	if strings.HasPrefix(rootPath, "~") {
		home, _ := os.UserHomeDir()
		rootPath = filepath.Join(home, rootPath[1:])
	}
	return &Store{rootPath: rootPath}
}

// RootURI returns the root folder path
func (s *Store) RootURI() string {
	return s.rootPath
}

// List returns the entries under a folder, skipping anything that is neither
// a directory nor a recognized note file. Directories sort before files.
func (s *Store) List(folderURI string) ([]domain.Entry, error) {
	dirEntries, err := os.ReadDir(folderURI)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder: %w", err)
	}

	var entries []domain.Entry
	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !de.IsDir() && !domain.IsNoteFile(name) {
			continue
		}

		entry := domain.Entry{
			Name:  name,
			URI:   filepath.Join(folderURI, name),
			IsDir: de.IsDir(),
		}
		if info, err := de.Info(); err == nil {
			entry.Size = info.Size()
			entry.ModTime = info.ModTime()
		}
		entries = append(entries, entry)
	}

	domain.SortEntries(entries)
	return entries, nil
}

// Read returns the content of a note
func (s *Store) Read(fileURI string) (string, error) {
	content, err := os.ReadFile(fileURI)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", fileURI, application.ErrNotFound)
		}
		return "", fmt.Errorf("failed to read note: %w", err)
	}
	return string(content), nil
}

// Write upserts a note's content
func (s *Store) Write(fileURI string, content string) error {
	if err := os.WriteFile(fileURI, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write note: %w", err)
	}
	return nil
}

// CreateNote creates (or overwrites) a note in a folder
func (s *Store) CreateNote(folderURI, name, content string) (string, error) {
	path := filepath.Join(folderURI, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to create note: %w", err)
	}
	return path, nil
}

// CreateFolder creates a folder under a parent
func (s *Store) CreateFolder(parentURI, name string) (string, error) {
	path := filepath.Join(parentURI, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", fmt.Errorf("failed to create folder: %w", err)
	}
	return path, nil
}

// Delete removes a note. Missing notes are not an error.
func (s *Store) Delete(fileURI string) error {
	if err := os.Remove(fileURI); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

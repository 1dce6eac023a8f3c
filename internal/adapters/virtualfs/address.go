package virtualfs

import (
	"fmt"
	"strings"

	"marknote/internal/application"
)

// Addresses issued by the virtual backend:
//
//	virtual://<folder-id>     folder
//	virtual://file/<name>     note
const (
	scheme     = "virtual://"
	filePrefix = scheme + "file/"
)

// FolderURI returns the address for a folder id
func FolderURI(folderID string) string {
	return scheme + folderID
}

// NoteURI returns the address for a note name
func NoteURI(name string) string {
	return filePrefix + name
}

// ParseNoteURI extracts the note name from a note address
func ParseNoteURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, filePrefix) || len(uri) == len(filePrefix) {
		return "", fmt.Errorf("%q is not a note address: %w", uri, application.ErrInvalidAddress)
	}
	return uri[len(filePrefix):], nil
}

// ParseFolderURI extracts the folder id from a folder address
func ParseFolderURI(uri string) (string, error) {
	if strings.HasPrefix(uri, filePrefix) || !strings.HasPrefix(uri, scheme) || len(uri) == len(scheme) {
		return "", fmt.Errorf("%q is not a folder address: %w", uri, application.ErrInvalidAddress)
	}
	return uri[len(scheme):], nil
}

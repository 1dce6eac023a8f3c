package ports

import "marknote/internal/domain"

// NoteStore defines the capability set both backends expose: list, read,
// write, create file, create folder, delete. Addresses are opaque strings
// issued by the backend; callers pass them back unchanged.
type NoteStore interface {
	// RootURI returns the address of the store's root folder.
	RootURI() string

	// List returns the entries directly under a folder, directories first,
	// each group in locale order.
	List(folderURI string) ([]domain.Entry, error)

	// Read returns the content of a note.
	Read(fileURI string) (string, error)

	// Write upserts a note's content. A note that does not exist yet is
	// created under the root folder.
	Write(fileURI string, content string) error

	// CreateNote creates (or overwrites) a note in a folder and returns
	// its address.
	CreateNote(folderURI, name, content string) (string, error)

	// CreateFolder creates a folder under a parent and returns its address.
	CreateFolder(parentURI, name string) (string, error)

	// Delete removes a note. Deleting a note that does not exist is a no-op.
	Delete(fileURI string) error
}

package commands

import (
	"context"
	"fmt"
	"strings"

	"marknote/internal/application"
	"marknote/internal/domain"
	"marknote/internal/ports"
)

// CreateNoteResult contains the result of creating a note
type CreateNoteResult struct {
	URI     string
	Message string
}

// CreateNoteCommand creates a note in a folder
type CreateNoteCommand struct {
	store     ports.NoteStore
	FolderURI string
	Name      string
	Content   string
}

// NewCreateNoteCommand creates a new CreateNoteCommand
func NewCreateNoteCommand(store ports.NoteStore, folderURI, name, content string) *CreateNoteCommand {
	return &CreateNoteCommand{
		store:     store,
		FolderURI: folderURI,
		Name:      name,
		Content:   content,
	}
}

// Validate checks if the create operation is valid
func (c *CreateNoteCommand) Validate() error {
	if c.FolderURI == "" {
		return &application.ValidationError{
			Field:   "folderURI",
			Message: "folder address is required",
		}
	}

	if strings.TrimSpace(c.Name) == "" {
		return &application.ValidationError{
			Field:   "name",
			Message: "note name is required",
		}
	}

	if !domain.IsNoteFile(c.Name) {
		return &application.ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("expected a note extension (%s), got: %s", strings.Join(domain.NoteExtensions, ", "), c.Name),
		}
	}

	return nil
}

// Execute runs the create note command
func (c *CreateNoteCommand) Execute(ctx context.Context) (*CreateNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	uri, err := c.store.CreateNote(c.FolderURI, c.Name, c.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return &CreateNoteResult{
		URI:     uri,
		Message: fmt.Sprintf("Created note: %s", c.Name),
	}, nil
}

// CreateFolderResult contains the result of creating a folder
type CreateFolderResult struct {
	URI     string
	Message string
}

// CreateFolderCommand creates a folder under a parent
type CreateFolderCommand struct {
	store     ports.NoteStore
	ParentURI string
	Name      string
}

// NewCreateFolderCommand creates a new CreateFolderCommand
func NewCreateFolderCommand(store ports.NoteStore, parentURI, name string) *CreateFolderCommand {
	return &CreateFolderCommand{
		store:     store,
		ParentURI: parentURI,
		Name:      name,
	}
}

// Validate checks if the create operation is valid
func (c *CreateFolderCommand) Validate() error {
	if c.ParentURI == "" {
		return &application.ValidationError{
			Field:   "parentURI",
			Message: "parent folder address is required",
		}
	}

	if strings.TrimSpace(c.Name) == "" {
		return &application.ValidationError{
			Field:   "name",
			Message: "folder name is required",
		}
	}

	if strings.ContainsAny(c.Name, `/\`) {
		return &application.ValidationError{
			Field:   "name",
			Message: "folder name must not contain path separators",
		}
	}

	return nil
}

// Execute runs the create folder command
func (c *CreateFolderCommand) Execute(ctx context.Context) (*CreateFolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	uri, err := c.store.CreateFolder(c.ParentURI, c.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	return &CreateFolderResult{
		URI:     uri,
		Message: fmt.Sprintf("Created folder: %s", c.Name),
	}, nil
}

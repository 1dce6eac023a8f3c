package commands

import (
	"context"
	"fmt"

	"marknote/internal/application"
	"marknote/internal/domain"
	"marknote/internal/ports"
)

// ListFolderCommand lists the entries under a folder
type ListFolderCommand struct {
	store     ports.NoteStore
	FolderURI string
}

// NewListFolderCommand creates a new ListFolderCommand
func NewListFolderCommand(store ports.NoteStore, folderURI string) *ListFolderCommand {
	return &ListFolderCommand{
		store:     store,
		FolderURI: folderURI,
	}
}

// Validate checks if the list operation is valid
func (c *ListFolderCommand) Validate() error {
	if c.FolderURI == "" {
		return &application.ValidationError{
			Field:   "folderURI",
			Message: "folder address is required",
		}
	}
	return nil
}

// Execute runs the list folder command
func (c *ListFolderCommand) Execute(ctx context.Context) ([]domain.Entry, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entries, err := c.store.List(c.FolderURI)
	if err != nil {
		return nil, fmt.Errorf("failed to list folder: %w", err)
	}
	return entries, nil
}

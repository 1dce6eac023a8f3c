package commands

import (
	"context"
	"fmt"

	"marknote/internal/application"
	"marknote/internal/ports"
)

// DeleteNoteCommand removes a note from the store
type DeleteNoteCommand struct {
	store ports.NoteStore
	URI   string
}

// NewDeleteNoteCommand creates a new DeleteNoteCommand
func NewDeleteNoteCommand(store ports.NoteStore, uri string) *DeleteNoteCommand {
	return &DeleteNoteCommand{
		store: store,
		URI:   uri,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteNoteCommand) Validate() error {
	if c.URI == "" {
		return &application.ValidationError{
			Field:   "uri",
			Message: "note address is required",
		}
	}
	return nil
}

// Execute runs the delete note command
func (c *DeleteNoteCommand) Execute(ctx context.Context) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if err := c.store.Delete(c.URI); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

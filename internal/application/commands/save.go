package commands

import (
	"context"
	"fmt"

	"marknote/internal/application"
	"marknote/internal/ports"
)

// SaveNoteCommand writes a note's content back to the store
type SaveNoteCommand struct {
	store   ports.NoteStore
	URI     string
	Content string
}

// NewSaveNoteCommand creates a new SaveNoteCommand
func NewSaveNoteCommand(store ports.NoteStore, uri, content string) *SaveNoteCommand {
	return &SaveNoteCommand{
		store:   store,
		URI:     uri,
		Content: content,
	}
}

// Validate checks if the save operation is valid
func (c *SaveNoteCommand) Validate() error {
	if c.URI == "" {
		return &application.ValidationError{
			Field:   "uri",
			Message: "note address is required",
		}
	}
	return nil
}

// Execute runs the save note command
func (c *SaveNoteCommand) Execute(ctx context.Context) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if err := c.store.Write(c.URI, c.Content); err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}
	return nil
}

package commands

import (
	"context"
	"fmt"

	"marknote/internal/application"
	"marknote/internal/ports"
)

// OpenNoteResult contains the result of opening a note
type OpenNoteResult struct {
	URI     string
	Content string
}

// OpenNoteCommand reads a note from the store
type OpenNoteCommand struct {
	store ports.NoteStore
	URI   string
}

// NewOpenNoteCommand creates a new OpenNoteCommand
func NewOpenNoteCommand(store ports.NoteStore, uri string) *OpenNoteCommand {
	return &OpenNoteCommand{
		store: store,
		URI:   uri,
	}
}

// Validate checks if the open operation is valid
func (c *OpenNoteCommand) Validate() error {
	if c.URI == "" {
		return &application.ValidationError{
			Field:   "uri",
			Message: "note address is required",
		}
	}
	return nil
}

// Execute runs the open note command
func (c *OpenNoteCommand) Execute(ctx context.Context) (*OpenNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	content, err := c.store.Read(c.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to read note: %w", err)
	}

	return &OpenNoteResult{
		URI:     c.URI,
		Content: content,
	}, nil
}

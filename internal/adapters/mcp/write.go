package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"marknote/internal/application/commands"
	"marknote/internal/ports"
)

// RegisterWriteTools adds all mutating note tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.NoteStore) {
	s.AddTool(writeNoteTool(), writeNoteHandler(store))
	s.AddTool(createNoteTool(), createNoteHandler(store))
	s.AddTool(createFolderTool(), createFolderHandler(store))
	s.AddTool(deleteNoteTool(), deleteNoteHandler(store))
}

// --- write_note ---

func writeNoteTool() mcp.Tool {
	return mcp.NewTool("write_note",
		mcp.WithDescription("Write a note's content. Creates the note under the root folder if it does not exist."),
		mcp.WithString("address",
			mcp.Description("Note address"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("New markdown content"),
			mcp.Required(),
		),
	)
}

func writeNoteHandler(store ports.NoteStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		address := req.GetString("address", "")
		content := req.GetString("content", "")
		if address == "" {
			return toolError(fmt.Errorf("address is required"))
		}

		cmd := commands.NewSaveNoteCommand(store, address, content)
		if err := cmd.Execute(ctx); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Saved %s", address)), nil
	}
}

// --- create_note ---

func createNoteTool() mcp.Tool {
	return mcp.NewTool("create_note",
		mcp.WithDescription("Create a new note in a folder. Overwrites an existing note with the same name."),
		mcp.WithString("folder",
			mcp.Description("Folder address. Omit to create under the root folder."),
		),
		mcp.WithString("name",
			mcp.Description("Note filename including extension (.md, .txt, .markdown, .text)"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("Initial markdown content"),
		),
	)
}

func createNoteHandler(store ports.NoteStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		folderURI := req.GetString("folder", "")
		if folderURI == "" {
			folderURI = store.RootURI()
		}
		name := req.GetString("name", "")
		content := req.GetString("content", "")

		cmd := commands.NewCreateNoteCommand(store, folderURI, name, content)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s (%s)", result.Message, result.URI)), nil
	}
}

// --- create_folder ---

func createFolderTool() mcp.Tool {
	return mcp.NewTool("create_folder",
		mcp.WithDescription("Create a new folder under a parent folder."),
		mcp.WithString("parent",
			mcp.Description("Parent folder address. Omit to create under the root folder."),
		),
		mcp.WithString("name",
			mcp.Description("Folder name"),
			mcp.Required(),
		),
	)
}

func createFolderHandler(store ports.NoteStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		parentURI := req.GetString("parent", "")
		if parentURI == "" {
			parentURI = store.RootURI()
		}
		name := req.GetString("name", "")

		cmd := commands.NewCreateFolderCommand(store, parentURI, name)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s (%s)", result.Message, result.URI)), nil
	}
}

// --- delete_note ---

func deleteNoteTool() mcp.Tool {
	return mcp.NewTool("delete_note",
		mcp.WithDescription("Delete a note by its address. Deleting a missing note is a no-op."),
		mcp.WithString("address",
			mcp.Description("Note address"),
			mcp.Required(),
		),
	)
}

func deleteNoteHandler(store ports.NoteStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		address := req.GetString("address", "")
		if address == "" {
			return toolError(fmt.Errorf("address is required"))
		}

		cmd := commands.NewDeleteNoteCommand(store, address)
		if err := cmd.Execute(ctx); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Deleted %s", address)), nil
	}
}

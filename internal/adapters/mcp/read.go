package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"marknote/internal/application/commands"
	"marknote/internal/domain"
	"marknote/internal/ports"
)

// RegisterReadTools adds all read-only note tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.NoteStore) {
	s.AddTool(listTool(), listHandler(store))
	s.AddTool(readNoteTool(), readNoteHandler(store))
	s.AddTool(treeTool(), treeHandler(store))
	s.AddTool(rootTool(), rootHandler(store))
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List the contents of a folder. Without arguments lists the root folder. Folders come before notes."),
		mcp.WithString("folder",
			mcp.Description("Folder address to list. Omit to list the root folder."),
		),
	)
}

func listHandler(store ports.NoteStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		folderURI := req.GetString("folder", "")
		if folderURI == "" {
			folderURI = store.RootURI()
		}

		cmd := commands.NewListFolderCommand(store, folderURI)
		entries, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(entries) == 0 {
			return mcp.NewToolResultText("Empty folder."), nil
		}

		var sb strings.Builder
		for _, e := range entries {
			fmt.Fprintf(&sb, "%s\n", formatEntry(e))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- read_note ---

func readNoteTool() mcp.Tool {
	return mcp.NewTool("read_note",
		mcp.WithDescription("Read a note's markdown content by its address."),
		mcp.WithString("address",
			mcp.Description("Note address as returned by list"),
			mcp.Required(),
		),
	)
}

func readNoteHandler(store ports.NoteStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		address := req.GetString("address", "")
		if address == "" {
			return toolError(fmt.Errorf("address is required"))
		}

		cmd := commands.NewOpenNoteCommand(store, address)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Content), nil
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the note folder structure as a tree."),
	)
}

func treeHandler(store ports.NoteStore) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var sb strings.Builder
		if err := renderTree(&sb, store, store.RootURI(), ""); err != nil {
			return toolError(err)
		}
		if sb.Len() == 0 {
			return mcp.NewToolResultText("Empty store."), nil
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, store ports.NoteStore, folderURI, prefix string) error {
	entries, err := store.List(folderURI)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(sb, "%s%s\n", prefix, formatEntry(e))
		if e.IsDir {
			if err := renderTree(sb, store, e.URI, prefix+"  "); err != nil {
				return err
			}
		}
	}
	return nil
}

// --- root ---

func rootTool() mcp.Tool {
	return mcp.NewTool("root",
		mcp.WithDescription("Get the address of the root folder."),
	)
}

func rootHandler(store ports.NoteStore) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(store.RootURI()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntry(e domain.Entry) string {
	if e.IsDir {
		return fmt.Sprintf("%s/  %s", e.Name, e.URI)
	}
	return fmt.Sprintf("%s  %s", e.Name, e.URI)
}

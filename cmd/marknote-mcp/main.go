package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"marknote/internal/adapters/filesystem"
	"marknote/internal/adapters/kvstore"
	mcpadapter "marknote/internal/adapters/mcp"
	"marknote/internal/adapters/virtualfs"
	"marknote/internal/config"
	"marknote/internal/ports"
)

func main() {
	rootFlag := flag.String("root", config.NotesPath(), "path to the note directory (native backend)")
	backendFlag := flag.String("backend", config.Backend(), "store backend: native or virtual")
	flag.Parse()

	var store ports.NoteStore
	if *backendFlag == config.BackendVirtual {
		kv, err := kvstore.OpenSQLite(config.StorePath())
		if err != nil {
			log.Fatalf("marknote-mcp: %v", err)
		}
		defer kv.Close()
		store = virtualfs.NewStore(kv)
	} else {
		store = filesystem.NewStore(*rootFlag)
	}

	mcpServer := server.NewMCPServer(
		"marknote-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store)
	mcpadapter.RegisterWriteTools(mcpServer, store)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("marknote-mcp: %v", err)
	}
}

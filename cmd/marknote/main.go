package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"marknote/internal/adapters/editor"
	"marknote/internal/adapters/filesystem"
	"marknote/internal/adapters/kvstore"
	"marknote/internal/adapters/markdown"
	"marknote/internal/adapters/tui"
	"marknote/internal/adapters/virtualfs"
	"marknote/internal/config"
	"marknote/internal/ports"
)

func main() {
	var store ports.NoteStore
	var opener *editor.Opener

	switch config.Backend() {
	case config.BackendVirtual:
		kv, err := kvstore.OpenSQLite(config.StorePath())
		if err != nil {
			log.Fatalf("marknote: %v", err)
		}
		defer kv.Close()
		store = virtualfs.NewStore(kv)
	default:
		store = filesystem.NewStore(config.NotesPath())
		// External editors only make sense for real paths.
		opener = editor.NewOpener()
	}

	app := tui.NewApp(store, markdown.NewRenderer(), opener)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"marknote/internal/adapters/filesystem"
	"marknote/internal/adapters/kvstore"
	"marknote/internal/adapters/virtualfs"
	"marknote/internal/config"
	"marknote/internal/ports"
)

var (
	rootPath string
	backend  string
	store    ports.NoteStore
	kv       *kvstore.SQLite
)

var rootCmd = &cobra.Command{
	Use:   "marknote-cli",
	Short: "CLI for managing markdown notes",
	Long: `marknote-cli is a command-line interface for the marknote store.

It provides commands to list, read, create, delete, and render notes,
against either the native filesystem backend or the virtual store.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		if backend == config.BackendVirtual {
			var err error
			kv, err = kvstore.OpenSQLite(config.StorePath())
			if err != nil {
				return err
			}
			store = virtualfs.NewStore(kv)
			return nil
		}
		store = filesystem.NewStore(rootPath)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if kv != nil {
			return kv.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", config.NotesPath(), "path to the note directory (native backend)")
	rootCmd.PersistentFlags().StringVarP(&backend, "backend", "b", config.Backend(), "store backend: native or virtual")
}

// GetStore returns the initialized note store
func GetStore() ports.NoteStore {
	return store
}

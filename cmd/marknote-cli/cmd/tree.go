package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"marknote/internal/ports"
)

var treeCmd = &cobra.Command{
	Use:   "tree [folder-address]",
	Short: "Display the note folder structure as a tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := GetStore()

		folderURI := store.RootURI()
		if len(args) == 1 {
			folderURI = args[0]
		}

		return printTree(store, folderURI, "")
	},
}

func printTree(store ports.NoteStore, folderURI, indent string) error {
	entries, err := store.List(folderURI)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.IsDir {
			fmt.Printf("%s%s/\n", indent, e.Name)
			if err := printTree(store, e.URI, indent+"  "); err != nil {
				return err
			}
			continue
		}
		fmt.Printf("%s%s  (%d bytes, %s)\n", indent, e.Name, e.Size, e.ModTime.Format("2006-01-02 15:04"))
	}
	return nil
}

var foldersCmd = &cobra.Command{
	Use:   "addresses [folder-address]",
	Short: "List entry addresses under a folder",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := GetStore()

		folderURI := store.RootURI()
		if len(args) == 1 {
			folderURI = args[0]
		}

		entries, err := store.List(folderURI)
		if err != nil {
			return err
		}

		for _, e := range entries {
			kind := "note"
			if e.IsDir {
				kind = "folder"
			}
			fmt.Printf("%-6s  %s\n", kind, e.URI)
		}
		if len(entries) == 0 {
			fmt.Println("(empty)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(foldersCmd)
}

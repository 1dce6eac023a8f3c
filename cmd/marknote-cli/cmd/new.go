package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"marknote/internal/application/commands"
)

var newFromStdin bool

var newCmd = &cobra.Command{
	Use:   "new <name> [folder-address]",
	Short: "Create a new note",
	Long: `Create a new note in a folder (the root folder by default).

With --stdin the note's initial content is read from standard input:

  echo "# Hello" | marknote-cli new hello.md --stdin`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := GetStore()

		folderURI := store.RootURI()
		if len(args) == 2 {
			folderURI = args[1]
		}

		var content string
		if newFromStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			content = string(data)
		}

		ctx := context.Background()
		createCmd := commands.NewCreateNoteCommand(store, folderURI, args[0], content)
		result, err := createCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.URI)
		return nil
	},
}

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <name> [parent-address]",
	Short: "Create a new folder",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := GetStore()

		parentURI := store.RootURI()
		if len(args) == 2 {
			parentURI = args[1]
		}

		ctx := context.Background()
		createCmd := commands.NewCreateFolderCommand(store, parentURI, args[0])
		result, err := createCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.URI)
		return nil
	},
}

func init() {
	newCmd.Flags().BoolVar(&newFromStdin, "stdin", false, "read initial content from standard input")
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(mkdirCmd)
}

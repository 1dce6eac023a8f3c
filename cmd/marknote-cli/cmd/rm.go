package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"marknote/internal/application/commands"
)

var rmCmd = &cobra.Command{
	Use:   "rm <address>",
	Short: "Delete a note",
	Long:  `Delete a note by its address. Deleting a missing note is a no-op.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		deleteCmd := commands.NewDeleteNoteCommand(GetStore(), args[0])
		if err := deleteCmd.Execute(ctx); err != nil {
			return err
		}

		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

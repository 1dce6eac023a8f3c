package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"marknote/internal/application/commands"
)

var catCmd = &cobra.Command{
	Use:   "cat <address>",
	Short: "Print a note's markdown content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		openCmd := commands.NewOpenNoteCommand(GetStore(), args[0])
		result, err := openCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Print(result.Content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catCmd)
}

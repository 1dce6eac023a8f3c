package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"marknote/internal/adapters/markdown"
	"marknote/internal/application/commands"
)

var renderCmd = &cobra.Command{
	Use:   "render <address>",
	Short: "Render a note's markdown to HTML on stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		openCmd := commands.NewOpenNoteCommand(GetStore(), args[0])
		result, err := openCmd.Execute(ctx)
		if err != nil {
			return err
		}

		html, err := markdown.NewRenderer().Render(result.Content)
		if err != nil {
			return err
		}

		fmt.Print(html)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

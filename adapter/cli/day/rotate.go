package day

import (
	"fmt"

	"github.com/daybook-dev/daybook/adapter/cli"
	"github.com/daybook-dev/daybook/internal/journal/application/commands"
	"github.com/spf13/cobra"
)

var rotateCmd = &cobra.Command{
	Use:   "rotate",
	Short: "Archive today's notes and tasks and start fresh",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		archiveKey, err := app.RotateDayHandler.Handle(cmd.Context(), commands.RotateDayCommand{})
		if err != nil {
			return fmt.Errorf("failed to rotate day: %w", err)
		}
		fmt.Printf("Archived today under %s\n", archiveKey)
		return nil
	},
}

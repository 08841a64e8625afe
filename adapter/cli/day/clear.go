package day

import (
	"fmt"

	"github.com/daybook-dev/daybook/adapter/cli"
	"github.com/daybook-dev/daybook/internal/journal/application/commands"
	"github.com/spf13/cobra"
)

var (
	clearNotes bool
	clearTasks bool
	clearYes   bool
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Wipe today's notes, tasks, or both",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		scope := commands.ClearAll
		switch {
		case clearNotes && clearTasks:
		case clearNotes:
			scope = commands.ClearNotes
		case clearTasks:
			scope = commands.ClearTasks
		}

		if !clearYes {
			return fmt.Errorf("clearing cannot be undone; rerun with --yes to confirm")
		}

		removed, err := app.ClearDayHandler.Handle(cmd.Context(), commands.ClearDayCommand{Scope: scope})
		if err != nil {
			return fmt.Errorf("failed to clear: %w", err)
		}
		fmt.Printf("Removed %d item(s)\n", removed)
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVar(&clearNotes, "notes", false, "clear only notes")
	clearCmd.Flags().BoolVar(&clearTasks, "tasks", false, "clear only tasks")
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip the confirmation")
}

package task

import (
	"fmt"

	"github.com/daybook-dev/daybook/adapter/cli"
	"github.com/daybook-dev/daybook/internal/productivity/application/commands"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task (the source note, if any, is kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		taskID, err := resolveTaskID(cmd.Context(), app, args[0])
		if err != nil {
			return err
		}
		if err := app.DeleteTaskHandler.Handle(cmd.Context(), commands.DeleteTaskCommand{TaskID: taskID}); err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		fmt.Printf("Deleted task %s\n", short(taskID))
		return nil
	},
}

var priorityCmd = &cobra.Command{
	Use:   "priority <task-id> <level>",
	Short: "Pin a priority level (1-5); mode changes stop re-deriving it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		taskID, err := resolveTaskID(cmd.Context(), app, args[0])
		if err != nil {
			return err
		}

		var level int
		if _, err := fmt.Sscanf(args[1], "%d", &level); err != nil {
			return fmt.Errorf("level must be a number between 1 and 5")
		}

		if err := app.SetPriorityHandler.Handle(cmd.Context(), commands.SetPriorityCommand{
			TaskID: taskID,
			Level:  level,
		}); err != nil {
			return fmt.Errorf("failed to set priority: %w", err)
		}
		fmt.Printf("Task %s pinned to P%d\n", short(taskID), level)
		return nil
	},
}

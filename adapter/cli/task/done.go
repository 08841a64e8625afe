package task

import (
	"fmt"

	"github.com/daybook-dev/daybook/adapter/cli"
	"github.com/daybook-dev/daybook/internal/productivity/application/commands"
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Complete a task (recurring tasks reschedule instead)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		taskID, err := resolveTaskID(cmd.Context(), app, args[0])
		if err != nil {
			return err
		}

		result, err := app.CompleteTaskHandler.Handle(cmd.Context(), commands.CompleteTaskCommand{TaskID: taskID})
		if err != nil {
			return fmt.Errorf("failed to complete task: %w", err)
		}

		if result.Rescheduled {
			fmt.Printf("Task %s rescheduled to its next occurrence\n", short(taskID))
		} else {
			fmt.Printf("Task %s done\n", short(taskID))
		}
		return nil
	},
}

var reopenCmd = &cobra.Command{
	Use:   "reopen <task-id>",
	Short: "Reopen a completed task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		taskID, err := resolveTaskID(cmd.Context(), app, args[0])
		if err != nil {
			return err
		}
		if err := app.ReopenTaskHandler.Handle(cmd.Context(), commands.ReopenTaskCommand{TaskID: taskID}); err != nil {
			return fmt.Errorf("failed to reopen task: %w", err)
		}
		fmt.Printf("Task %s reopened\n", short(taskID))
		return nil
	},
}

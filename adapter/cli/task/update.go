package task

import (
	"fmt"

	"github.com/daybook-dev/daybook/adapter/cli"
	"github.com/daybook-dev/daybook/internal/productivity/application/commands"
	"github.com/daybook-dev/daybook/internal/productivity/domain/task"
	shared "github.com/daybook-dev/daybook/internal/shared/domain"
	"github.com/spf13/cobra"
)

var (
	updateTitle   string
	updateDetails string
	updateMode    string
	updateDo      string
	updateDue     string
	updateRepeat  string
	updateEvery   int
)

var updateCmd = &cobra.Command{
	Use:   "update <task-id>",
	Short: "Edit a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		taskID, err := resolveTaskID(cmd.Context(), app, args[0])
		if err != nil {
			return err
		}

		update := commands.UpdateTaskCommand{TaskID: taskID}
		flags := cmd.Flags()

		if flags.Changed("title") {
			update.Title = &updateTitle
		}
		if flags.Changed("details") {
			update.Details = &updateDetails
		}
		if flags.Changed("mode") {
			mode := task.Mode(updateMode)
			update.Mode = &mode
		}
		if flags.Changed("do") {
			do := shared.DayKey(updateDo)
			update.DoDate = &do
		}
		if flags.Changed("due") {
			due := shared.DayKey(updateDue)
			update.DueDate = &due
		}
		if flags.Changed("repeat") {
			rt, err := task.ParseRecurrenceType(updateRepeat)
			if err != nil {
				return err
			}
			interval := updateEvery
			if !flags.Changed("every") {
				interval = 1
			}
			update.Recurrence = &task.Recurrence{Type: rt, Interval: interval}
		}

		result, err := app.UpdateTaskHandler.Handle(cmd.Context(), update)
		if err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		fmt.Printf("Updated task %s (%s, score %d)\n",
			short(taskID), result.Task.Tier(), result.Task.Score())
		if result.DatesInverted {
			fmt.Println("Warning: do date is after the due date.")
		}
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	updateCmd.Flags().StringVar(&updateDetails, "details", "", "new details")
	updateCmd.Flags().StringVarP(&updateMode, "mode", "m", "", "new mode")
	updateCmd.Flags().StringVar(&updateDo, "do", "", "new do date (empty clears)")
	updateCmd.Flags().StringVar(&updateDue, "due", "", "new due date (empty clears)")
	updateCmd.Flags().StringVar(&updateRepeat, "repeat", "", "new recurrence (none, daily, weekly, monthly)")
	updateCmd.Flags().IntVar(&updateEvery, "every", 1, "recurrence interval")
}

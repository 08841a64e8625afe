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
	addDetails  string
	addMode     string
	addDo       string
	addDue      string
	addRepeat   string
	addInterval int
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task to the live day",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		var mode task.Mode
		if addMode != "" {
			parsed, err := task.ParseMode(addMode)
			if err != nil {
				return err
			}
			mode = parsed
		}

		recurrence := task.Recurrence{}
		if addRepeat != "" {
			rt, err := task.ParseRecurrenceType(addRepeat)
			if err != nil {
				return err
			}
			recurrence = task.Recurrence{Type: rt, Interval: addInterval}
		}

		result, err := app.AddTaskHandler.Handle(cmd.Context(), commands.AddTaskCommand{
			Title:      joinArgs(args),
			Details:    addDetails,
			Mode:       mode,
			DoDate:     shared.DayKey(addDo),
			DueDate:    shared.DayKey(addDue),
			Recurrence: recurrence,
		})
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		created := result.Task
		fmt.Printf("Added task %s (%s, score %d)\n", short(created.ID()), created.Tier(), created.Score())
		if result.DatesInverted {
			fmt.Println("Warning: do date is after the due date.")
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addDetails, "details", "", "free-text details")
	addCmd.Flags().StringVarP(&addMode, "mode", "m", "", "mode (immediate, quick, scheduled, errand, remember, waiting)")
	addCmd.Flags().StringVar(&addDo, "do", "", "do date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addDue, "due", "", "due date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addRepeat, "repeat", "", "recurrence (daily, weekly, monthly)")
	addCmd.Flags().IntVar(&addInterval, "every", 1, "recurrence interval")
}

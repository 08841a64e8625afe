package task

import (
	"fmt"
	"os"
	"strings"

	"github.com/daybook-dev/daybook/adapter/cli"
	"github.com/daybook-dev/daybook/internal/productivity/application/queries"
	"github.com/daybook-dev/daybook/internal/productivity/domain/task"
	"github.com/spf13/cobra"
)

var listView string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks through a time view (all, today, overdue, week, nodate)",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		view := listView
		if view == "" {
			view = app.DefaultView
		}

		rows, err := app.ListTasksHandler.Handle(cmd.Context(), queries.ListTasksQuery{
			View: task.ParseView(view),
		})
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No tasks in this view.")
			return nil
		}

		out := make([][]string, 0, len(rows))
		for _, r := range rows {
			out = append(out, []string{
				short(r.ID),
				statusCell(r),
				r.Title,
				strings.ToLower(string(r.Mode)),
				fmt.Sprintf("P%d", r.PriorityLevel),
				fmt.Sprintf("%s/%d", r.Tier, r.Score),
				string(r.DoDate),
				dueCell(r),
				progressCell(r),
			})
		}
		cli.RenderTable(os.Stdout,
			[]string{"ID", "", "TITLE", "MODE", "LVL", "SCORE", "DO", "DUE", "STEPS"}, out)
		return nil
	},
}

func statusCell(r queries.TaskRow) string {
	switch {
	case r.Done:
		return "x"
	case r.Overdue:
		return "!"
	default:
		return " "
	}
}

func dueCell(r queries.TaskRow) string {
	due := string(r.DueDate)
	if r.Recurrence.Type != task.RecurrenceNone {
		due += " ↻"
	}
	return due
}

func progressCell(r queries.TaskRow) string {
	if len(r.Subtasks) == 0 {
		return ""
	}
	return fmt.Sprintf("%d%%", r.Progress)
}

func init() {
	listCmd.Flags().StringVar(&listView, "view", "", "time view filter")
}

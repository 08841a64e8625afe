package cli

import (
	"fmt"
	"os"

	journalQueries "github.com/daybook-dev/daybook/internal/journal/application/queries"
	"github.com/daybook-dev/daybook/internal/productivity/application/queries"
	"github.com/daybook-dev/daybook/internal/productivity/domain/task"
	"github.com/spf13/cobra"
)

// todayCmd is the default overview: the active day with its notes and tasks.
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the day being viewed",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := GetApp()

		view, err := a.GetDayHandler.Handle(cmd.Context(), journalQueries.GetDayQuery{})
		if err != nil {
			return err
		}

		header := string(view.Summary.Key)
		if view.Summary.Live {
			header += " (live)"
		} else {
			header += " (read-only)"
		}
		fmt.Println(header)

		notes, err := a.ListNotesHandler.Handle(cmd.Context(), journalQueries.ListNotesQuery{})
		if err != nil {
			return err
		}
		fmt.Printf("\nNotes (%d)\n", len(notes))
		for _, n := range notes {
			marker := "-"
			if n.HasAudio {
				marker = "♪"
			}
			fmt.Printf("  %s %s\n", marker, n.Title)
		}

		rows, err := a.ListTasksHandler.Handle(cmd.Context(), queries.ListTasksQuery{View: task.ViewAll})
		if err != nil {
			return err
		}
		fmt.Printf("\nTasks (%d)\n", len(rows))
		out := make([][]string, 0, len(rows))
		for _, r := range rows {
			status := " "
			if r.Done {
				status = "x"
			} else if r.Overdue {
				status = "!"
			}
			out = append(out, []string{
				fmt.Sprintf("[%s]", status),
				r.Title,
				fmt.Sprintf("P%d", r.PriorityLevel),
				string(r.DueDate),
			})
		}
		RenderTable(os.Stdout, []string{"", "TITLE", "LVL", "DUE"}, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

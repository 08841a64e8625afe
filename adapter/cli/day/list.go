package day

import (
	"fmt"
	"os"

	"github.com/daybook-dev/daybook/adapter/cli"
	"github.com/daybook-dev/daybook/internal/journal/application/queries"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all days, live and archived",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		days, err := app.ListDaysHandler.Handle(cmd.Context(), queries.ListDaysQuery{})
		if err != nil {
			return fmt.Errorf("failed to list days: %w", err)
		}

		rows := make([][]string, 0, len(days))
		for _, d := range days {
			status := "archived"
			if d.Live {
				status = "live"
			}
			marker := ""
			if d.Active {
				marker = "*"
			}
			rows = append(rows, []string{
				marker,
				string(d.Key),
				status,
				fmt.Sprintf("%d", d.Notes),
				fmt.Sprintf("%d", d.Tasks),
			})
		}
		cli.RenderTable(os.Stdout, []string{"", "DAY", "STATUS", "NOTES", "TASKS"}, rows)
		return nil
	},
}

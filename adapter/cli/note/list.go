package note

import (
	"fmt"
	"os"

	"github.com/daybook-dev/daybook/adapter/cli"
	"github.com/daybook-dev/daybook/internal/journal/application/queries"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the notes of the day being viewed",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		notes, err := app.ListNotesHandler.Handle(cmd.Context(), queries.ListNotesQuery{})
		if err != nil {
			return fmt.Errorf("failed to list notes: %w", err)
		}
		if len(notes) == 0 {
			fmt.Println("No notes yet.")
			return nil
		}

		rows := make([][]string, 0, len(notes))
		for _, n := range notes {
			audio := ""
			if n.HasAudio {
				audio = "yes"
			}
			files := ""
			if n.Attachments > 0 {
				files = fmt.Sprintf("%d", n.Attachments)
			}
			task := ""
			if n.Promoted {
				task = "yes"
			}
			rows = append(rows, []string{short(n.ID), n.Title, audio, files, task})
		}
		cli.RenderTable(os.Stdout, []string{"ID", "TITLE", "AUDIO", "FILES", "TASK"}, rows)
		return nil
	},
}

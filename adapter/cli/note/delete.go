package note

import (
	"fmt"

	"github.com/daybook-dev/daybook/adapter/cli"
	"github.com/daybook-dev/daybook/internal/journal/application/commands"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <note-id>",
	Short: "Delete a note, its recordings, and any task created from it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		noteID, err := resolveNoteID(cmd.Context(), app, args[0])
		if err != nil {
			return err
		}

		if err := app.DeleteNoteHandler.Handle(cmd.Context(), commands.DeleteNoteCommand{NoteID: noteID}); err != nil {
			return fmt.Errorf("failed to delete note: %w", err)
		}
		fmt.Printf("Deleted note %s\n", short(noteID))
		return nil
	},
}

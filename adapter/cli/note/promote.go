package note

import (
	"errors"
	"fmt"

	"github.com/daybook-dev/daybook/adapter/cli"
	"github.com/daybook-dev/daybook/internal/journal/application/commands"
	"github.com/spf13/cobra"
)

var promoteForce bool

var promoteCmd = &cobra.Command{
	Use:   "promote <note-id>",
	Short: "Create a prioritized task from a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		noteID, err := resolveNoteID(cmd.Context(), app, args[0])
		if err != nil {
			return err
		}

		created, err := app.PromoteNoteHandler.Handle(cmd.Context(), commands.PromoteNoteCommand{
			NoteID:           noteID,
			ConfirmDuplicate: promoteForce,
		})
		if errors.Is(err, commands.ErrAlreadyPromoted) {
			return fmt.Errorf("note %s already has a task; rerun with --force to create another", short(noteID))
		}
		if err != nil {
			return fmt.Errorf("failed to promote note: %w", err)
		}

		fmt.Printf("Created task %s (%s, score %d)\n", short(created.ID()), created.Tier(), created.Score())
		return nil
	},
}

func init() {
	promoteCmd.Flags().BoolVar(&promoteForce, "force", false, "promote even if the note already has a task")
}

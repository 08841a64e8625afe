package note

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/daybook-dev/daybook/adapter/cli"
	"github.com/daybook-dev/daybook/internal/journal/application/commands"
	"github.com/daybook-dev/daybook/internal/journal/infrastructure/capture"
	"github.com/spf13/cobra"
)

var attachCmd = &cobra.Command{
	Use:   "attach <note-id> <file>",
	Short: "Attach a file to a note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		noteID, err := resolveNoteID(cmd.Context(), app, args[0])
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read attachment: %w", err)
		}

		blobID, err := app.AttachFileHandler.Handle(cmd.Context(), commands.AttachFileCommand{
			NoteID: noteID,
			Name:   filepath.Base(args[1]),
			Mime:   capture.MimeForPath(args[1]),
			Data:   data,
		})
		if err != nil {
			return fmt.Errorf("failed to attach file: %w", err)
		}

		fmt.Printf("Attached %s (%s)\n", filepath.Base(args[1]), blobID.String()[:8])
		return nil
	},
}

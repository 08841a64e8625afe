package note

import (
	"errors"
	"fmt"

	"github.com/daybook-dev/daybook/adapter/cli"
	"github.com/daybook-dev/daybook/internal/journal/application/commands"
	"github.com/daybook-dev/daybook/internal/journal/domain"
	"github.com/spf13/cobra"
)

var (
	addTitle string
	addText  string
	addAudio string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Capture a note, optionally with an audio recording",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		result, err := app.CaptureNoteHandler.Handle(cmd.Context(), commands.CaptureNoteCommand{
			Title:       addTitle,
			Text:        addText,
			AudioSource: addAudio,
		})
		if errors.Is(err, domain.ErrEmptyNote) {
			return fmt.Errorf("nothing to capture: give --title or --text")
		}
		if errors.Is(err, domain.ErrCaptureDenied) {
			return fmt.Errorf("audio capture denied, note was not saved")
		}
		if err != nil {
			return fmt.Errorf("failed to capture note: %w", err)
		}

		fmt.Printf("Captured note %s\n", short(result.NoteID))
		if addAudio != "" {
			fmt.Println("Audio attached.")
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "note title")
	addCmd.Flags().StringVar(&addText, "text", "", "note body")
	addCmd.Flags().StringVar(&addAudio, "audio", "", "audio file to attach as a recording")
}

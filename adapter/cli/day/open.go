package day

import (
	"errors"
	"fmt"

	"github.com/daybook-dev/daybook/adapter/cli"
	"github.com/daybook-dev/daybook/internal/journal/application/commands"
	"github.com/daybook-dev/daybook/internal/journal/domain"
	shared "github.com/daybook-dev/daybook/internal/shared/domain"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <day-key>",
	Short: "View another day; anything but today is read-only",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		key := shared.DayKey(args[0])
		if args[0] == "today" {
			key = app.Session.Today()
		}

		err := app.OpenDayHandler.Handle(cmd.Context(), commands.OpenDayCommand{Key: key})
		if errors.Is(err, domain.ErrDayNotFound) {
			return fmt.Errorf("no day %s; see daybook day list", key)
		}
		if err != nil {
			return fmt.Errorf("failed to open day: %w", err)
		}

		if app.Session.State().IsLive(app.Session.Today()) {
			fmt.Printf("Viewing %s (live)\n", key)
		} else {
			fmt.Printf("Viewing %s (read-only)\n", key)
		}
		return nil
	},
}

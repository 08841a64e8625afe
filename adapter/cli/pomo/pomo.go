// Package pomo holds the pomodoro command. The timer is a foreground loop
// over the session's state machine; interrupting the command stops it.
package pomo

import (
	"fmt"
	"time"

	"github.com/daybook-dev/daybook/adapter/cli"
	"github.com/daybook-dev/daybook/internal/productivity/domain/pomodoro"
	"github.com/spf13/cobra"
)

var intervals int

// Cmd groups all pomodoro commands.
var Cmd = &cobra.Command{
	Use:   "pomo",
	Short: "Run a pomodoro focus timer",
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run work/break intervals in the foreground until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		session := app.Session.Pomodoro()
		ctx := cmd.Context()

		if err := session.Start(app.Session.Now()); err != nil {
			return err
		}
		fmt.Printf("Focus. Work interval started (%s remaining).\n",
			formatRemaining(session.Remaining(app.Session.Now())))

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		phase := pomodoro.PhaseWork
		for {
			select {
			case <-ctx.Done():
				_ = session.Stop()
				fmt.Printf("\nStopped after %d completed interval(s).\n", session.Completed())
				return nil
			case <-ticker.C:
				now := app.Session.Now()
				next := session.Tick(now)
				if next == phase {
					continue
				}
				phase = next
				switch phase {
				case pomodoro.PhaseBreak:
					fmt.Printf("Work interval done (%d so far). Break time.\n", session.Completed())
					if intervals > 0 && session.Completed() >= intervals {
						_ = session.Stop()
						fmt.Printf("Finished %d interval(s).\n", session.Completed())
						return nil
					}
				case pomodoro.PhaseWork:
					fmt.Println("Break over. Back to work.")
				}
			}
		}
	},
}

func formatRemaining(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func init() {
	startCmd.Flags().IntVarP(&intervals, "intervals", "n", 0, "stop after this many work intervals (0 runs until interrupted)")
	Cmd.AddCommand(startCmd)
}

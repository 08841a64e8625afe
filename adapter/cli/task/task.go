// Package task holds the task command group.
package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/daybook-dev/daybook/adapter/cli"
	"github.com/daybook-dev/daybook/internal/productivity/application/queries"
	"github.com/daybook-dev/daybook/internal/productivity/domain/task"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Cmd groups all task commands.
var Cmd = &cobra.Command{
	Use:   "task",
	Short: "Manage the day's task list",
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(doneCmd)
	Cmd.AddCommand(reopenCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(priorityCmd)
	Cmd.AddCommand(subtaskCmd)
}

// resolveTaskID accepts a full task id or a unique prefix of one.
func resolveTaskID(ctx context.Context, app *cli.App, arg string) (uuid.UUID, error) {
	if id, err := uuid.Parse(arg); err == nil {
		return id, nil
	}

	rows, err := app.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{View: task.ViewAll})
	if err != nil {
		return uuid.Nil, err
	}

	var matches []uuid.UUID
	for _, r := range rows {
		if strings.HasPrefix(r.ID.String(), strings.ToLower(arg)) {
			matches = append(matches, r.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return uuid.Nil, fmt.Errorf("no task matches %q", arg)
	default:
		return uuid.Nil, fmt.Errorf("task id %q is ambiguous", arg)
	}
}

func short(id uuid.UUID) string {
	return id.String()[:8]
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

package task

import (
	"fmt"
	"strings"

	"github.com/daybook-dev/daybook/adapter/cli"
	"github.com/daybook-dev/daybook/internal/productivity/application/commands"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var subtaskCmd = &cobra.Command{
	Use:   "subtask",
	Short: "Manage a task's checklist",
}

var subtaskAddCmd = &cobra.Command{
	Use:   "add <task-id> <title>",
	Short: "Add a checklist entry",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		taskID, err := resolveTaskID(cmd.Context(), app, args[0])
		if err != nil {
			return err
		}

		st, err := app.SubtaskHandler.HandleAdd(cmd.Context(), commands.AddSubtaskCommand{
			TaskID: taskID,
			Title:  strings.Join(args[1:], " "),
		})
		if err != nil {
			return fmt.Errorf("failed to add subtask: %w", err)
		}
		fmt.Printf("Added step %s\n", st.ID.String()[:8])
		return nil
	},
}

var subtaskToggleCmd = &cobra.Command{
	Use:   "toggle <task-id> <subtask-id>",
	Short: "Flip a checklist entry; finishing the last one completes the task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		taskID, err := resolveTaskID(cmd.Context(), app, args[0])
		if err != nil {
			return err
		}
		subtaskID, err := resolveSubtaskID(app, taskID, args[1])
		if err != nil {
			return err
		}

		progress, err := app.SubtaskHandler.HandleToggle(cmd.Context(), commands.ToggleSubtaskCommand{
			TaskID:    taskID,
			SubtaskID: subtaskID,
		})
		if err != nil {
			return fmt.Errorf("failed to toggle subtask: %w", err)
		}
		fmt.Printf("Progress: %d%%\n", progress)
		return nil
	},
}

var subtaskRemoveCmd = &cobra.Command{
	Use:   "remove <task-id> <subtask-id>",
	Short: "Remove a checklist entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		taskID, err := resolveTaskID(cmd.Context(), app, args[0])
		if err != nil {
			return err
		}
		subtaskID, err := resolveSubtaskID(app, taskID, args[1])
		if err != nil {
			return err
		}

		if err := app.SubtaskHandler.HandleRemove(cmd.Context(), commands.RemoveSubtaskCommand{
			TaskID:    taskID,
			SubtaskID: subtaskID,
		}); err != nil {
			return fmt.Errorf("failed to remove subtask: %w", err)
		}
		fmt.Println("Removed.")
		return nil
	},
}

func resolveSubtaskID(app *cli.App, taskID uuid.UUID, arg string) (uuid.UUID, error) {
	if id, err := uuid.Parse(arg); err == nil {
		return id, nil
	}

	t, ok := app.Session.ActiveBucket().FindTask(taskID)
	if !ok {
		return uuid.Nil, fmt.Errorf("no task matches %q", taskID)
	}

	var matches []uuid.UUID
	for _, st := range t.Subtasks() {
		if strings.HasPrefix(st.ID.String(), strings.ToLower(arg)) {
			matches = append(matches, st.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return uuid.Nil, fmt.Errorf("no subtask matches %q", arg)
	default:
		return uuid.Nil, fmt.Errorf("subtask id %q is ambiguous", arg)
	}
}

func init() {
	subtaskCmd.AddCommand(subtaskAddCmd)
	subtaskCmd.AddCommand(subtaskToggleCmd)
	subtaskCmd.AddCommand(subtaskRemoveCmd)
}

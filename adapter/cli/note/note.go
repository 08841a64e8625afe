// Package note holds the note command group.
package note

import (
	"context"
	"fmt"
	"strings"

	"github.com/daybook-dev/daybook/adapter/cli"
	"github.com/daybook-dev/daybook/internal/journal/application/queries"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Cmd groups all note commands.
var Cmd = &cobra.Command{
	Use:   "note",
	Short: "Capture and manage notes for the active day",
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(promoteCmd)
	Cmd.AddCommand(attachCmd)
}

// resolveNoteID accepts a full note id or a unique prefix of one.
func resolveNoteID(ctx context.Context, app *cli.App, arg string) (uuid.UUID, error) {
	if id, err := uuid.Parse(arg); err == nil {
		return id, nil
	}

	notes, err := app.ListNotesHandler.Handle(ctx, queries.ListNotesQuery{})
	if err != nil {
		return uuid.Nil, err
	}

	var matches []uuid.UUID
	for _, n := range notes {
		if strings.HasPrefix(n.ID.String(), strings.ToLower(arg)) {
			matches = append(matches, n.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return uuid.Nil, fmt.Errorf("no note matches %q", arg)
	default:
		return uuid.Nil, fmt.Errorf("note id %q is ambiguous", arg)
	}
}

func short(id uuid.UUID) string {
	return id.String()[:8]
}

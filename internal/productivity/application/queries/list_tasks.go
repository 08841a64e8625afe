// Package queries holds the productivity read side: filtered, sorted task
// listings over the active day bucket.
package queries

import (
	"context"

	"github.com/daybook-dev/daybook/internal/productivity/application/commands"
	"github.com/daybook-dev/daybook/internal/productivity/domain/task"
	shared "github.com/daybook-dev/daybook/internal/shared/domain"
	"github.com/google/uuid"
)

// TaskRow is the listing row for one task.
type TaskRow struct {
	ID            uuid.UUID
	Title         string
	Details       string
	Mode          task.Mode
	PriorityLevel int
	DoDate        shared.DayKey
	DueDate       shared.DayKey
	Recurrence    task.Recurrence
	Done          bool
	Overdue       bool
	Score         int
	Tier          task.Tier
	Progress      int
	Subtasks      []task.Subtask
	FromNote      bool
}

// ListTasksQuery lists the active day's tasks through a view filter.
type ListTasksQuery struct {
	View task.View
}

// ListTasksHandler filters and sorts the listing.
type ListTasksHandler struct {
	journal commands.Journal
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(journal commands.Journal) *ListTasksHandler {
	return &ListTasksHandler{journal: journal}
}

// Handle returns the matching tasks in display order: overdue first, then by
// due date, do date, and priority level.
func (h *ListTasksHandler) Handle(_ context.Context, query ListTasksQuery) ([]TaskRow, error) {
	view := query.View
	if view == "" {
		view = task.ViewAll
	}
	today := h.journal.Today()

	bucket := h.journal.ActiveBucket()
	matched := make([]*task.Task, 0, len(bucket.Tasks))
	for _, t := range bucket.Tasks {
		if t.Matches(view, today) {
			matched = append(matched, t)
		}
	}
	task.Sort(matched, today)

	rows := make([]TaskRow, 0, len(matched))
	for _, t := range matched {
		rows = append(rows, TaskRow{
			ID:            t.ID(),
			Title:         t.Title(),
			Details:       t.Details(),
			Mode:          t.Mode(),
			PriorityLevel: t.PriorityLevel(),
			DoDate:        t.DoDate(),
			DueDate:       t.DueDate(),
			Recurrence:    t.Recurrence(),
			Done:          t.Done(),
			Overdue:       t.IsOverdue(today),
			Score:         t.Score(),
			Tier:          t.Tier(),
			Progress:      t.Progress(),
			Subtasks:      t.Subtasks(),
			FromNote:      t.NoteID() != uuid.Nil,
		})
	}
	return rows, nil
}

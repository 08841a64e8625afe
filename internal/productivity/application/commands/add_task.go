package commands

import (
	"context"

	"github.com/daybook-dev/daybook/internal/productivity/application/services"
	"github.com/daybook-dev/daybook/internal/productivity/domain/task"
	shared "github.com/daybook-dev/daybook/internal/shared/domain"
)

// AddTaskCommand contains the data for creating a task.
type AddTaskCommand struct {
	Title      string
	Details    string
	Mode       task.Mode
	DoDate     shared.DayKey
	DueDate    shared.DayKey
	Recurrence task.Recurrence
}

// AddTaskResult reports the created task. DatesInverted flags a do date after
// the due date; the task is created anyway and the caller decides whether to
// warn.
type AddTaskResult struct {
	Task          *task.Task
	DatesInverted bool
}

// AddTaskHandler creates tasks in the live bucket.
type AddTaskHandler struct {
	journal Journal
	engine  *services.PriorityEngine
}

// NewAddTaskHandler creates a new AddTaskHandler.
func NewAddTaskHandler(journal Journal, engine *services.PriorityEngine) *AddTaskHandler {
	return &AddTaskHandler{journal: journal, engine: engine}
}

// Handle executes the creation.
func (h *AddTaskHandler) Handle(ctx context.Context, cmd AddTaskCommand) (*AddTaskResult, error) {
	bucket, err := h.journal.MutableBucket()
	if err != nil {
		return nil, err
	}

	t, err := task.New(cmd.Title, cmd.Mode)
	if err != nil {
		return nil, err
	}
	if cmd.Details != "" {
		t.SetDetails(cmd.Details)
	}
	if err := t.SetDoDate(cmd.DoDate); err != nil {
		return nil, err
	}
	if err := t.SetDueDate(cmd.DueDate); err != nil {
		return nil, err
	}
	if cmd.Recurrence.Type != "" {
		if err := t.SetRecurrence(cmd.Recurrence); err != nil {
			return nil, err
		}
	}
	h.engine.Rescore(t)

	bucket.Tasks = append(bucket.Tasks, t)
	h.journal.PublishAll(ctx, t)
	h.journal.MarkDirty()

	return &AddTaskResult{Task: t, DatesInverted: t.DatesInverted()}, nil
}

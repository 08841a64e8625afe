package commands

import (
	"context"

	journal "github.com/daybook-dev/daybook/internal/journal/domain"
	"github.com/daybook-dev/daybook/internal/productivity/application/services"
	"github.com/daybook-dev/daybook/internal/productivity/domain/task"
	shared "github.com/daybook-dev/daybook/internal/shared/domain"
	"github.com/google/uuid"
)

// UpdateTaskCommand edits a task. Nil fields are left untouched; a non-nil
// empty day key clears that date.
type UpdateTaskCommand struct {
	TaskID     uuid.UUID
	Title      *string
	Details    *string
	Mode       *task.Mode
	DoDate     *shared.DayKey
	DueDate    *shared.DayKey
	Recurrence *task.Recurrence
}

// UpdateTaskResult reports the edited task and the advisory date warning.
type UpdateTaskResult struct {
	Task          *task.Task
	DatesInverted bool
}

// UpdateTaskHandler applies partial edits and rescores.
type UpdateTaskHandler struct {
	journal Journal
	engine  *services.PriorityEngine
}

// NewUpdateTaskHandler creates a new UpdateTaskHandler.
func NewUpdateTaskHandler(journal Journal, engine *services.PriorityEngine) *UpdateTaskHandler {
	return &UpdateTaskHandler{journal: journal, engine: engine}
}

// Handle executes the edit.
func (h *UpdateTaskHandler) Handle(_ context.Context, cmd UpdateTaskCommand) (*UpdateTaskResult, error) {
	bucket, err := h.journal.MutableBucket()
	if err != nil {
		return nil, err
	}

	t, ok := bucket.FindTask(cmd.TaskID)
	if !ok {
		return nil, journal.ErrTaskNotFound
	}

	if cmd.Title != nil {
		if err := t.SetTitle(*cmd.Title); err != nil {
			return nil, err
		}
	}
	if cmd.Details != nil {
		t.SetDetails(*cmd.Details)
	}
	if cmd.Mode != nil {
		mode, err := task.ParseMode(string(*cmd.Mode))
		if err != nil {
			return nil, err
		}
		t.SetMode(mode)
	}
	if cmd.DoDate != nil {
		if err := t.SetDoDate(*cmd.DoDate); err != nil {
			return nil, err
		}
	}
	if cmd.DueDate != nil {
		if err := t.SetDueDate(*cmd.DueDate); err != nil {
			return nil, err
		}
	}
	if cmd.Recurrence != nil {
		if err := t.SetRecurrence(*cmd.Recurrence); err != nil {
			return nil, err
		}
	}

	h.engine.Rescore(t)
	h.journal.MarkDirty()
	return &UpdateTaskResult{Task: t, DatesInverted: t.DatesInverted()}, nil
}

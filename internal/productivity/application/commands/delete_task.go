package commands

import (
	"context"

	journal "github.com/daybook-dev/daybook/internal/journal/domain"
	"github.com/daybook-dev/daybook/internal/productivity/domain/task"
	"github.com/google/uuid"
)

// DeleteTaskCommand removes a task from the live bucket. The source note, if
// any, stays.
type DeleteTaskCommand struct {
	TaskID uuid.UUID
}

// DeleteTaskHandler performs the removal.
type DeleteTaskHandler struct {
	journal Journal
}

// NewDeleteTaskHandler creates a new DeleteTaskHandler.
func NewDeleteTaskHandler(journal Journal) *DeleteTaskHandler {
	return &DeleteTaskHandler{journal: journal}
}

// Handle executes the delete.
func (h *DeleteTaskHandler) Handle(_ context.Context, cmd DeleteTaskCommand) error {
	bucket, err := h.journal.MutableBucket()
	if err != nil {
		return err
	}

	if _, ok := bucket.FindTask(cmd.TaskID); !ok {
		return journal.ErrTaskNotFound
	}

	tasks := make([]*task.Task, 0, len(bucket.Tasks)-1)
	for _, t := range bucket.Tasks {
		if t.ID() != cmd.TaskID {
			tasks = append(tasks, t)
		}
	}
	bucket.Tasks = tasks
	h.journal.MarkDirty()
	return nil
}

package commands

import (
	"context"

	journal "github.com/daybook-dev/daybook/internal/journal/domain"
	"github.com/google/uuid"
)

// SetPriorityCommand pins a user-chosen priority level on a task.
type SetPriorityCommand struct {
	TaskID uuid.UUID
	Level  int
}

// SetPriorityHandler applies the level. The level locks: later mode changes
// stop re-deriving it.
type SetPriorityHandler struct {
	journal Journal
}

// NewSetPriorityHandler creates a new SetPriorityHandler.
func NewSetPriorityHandler(journal Journal) *SetPriorityHandler {
	return &SetPriorityHandler{journal: journal}
}

// Handle executes the change.
func (h *SetPriorityHandler) Handle(_ context.Context, cmd SetPriorityCommand) error {
	bucket, err := h.journal.MutableBucket()
	if err != nil {
		return err
	}

	t, ok := bucket.FindTask(cmd.TaskID)
	if !ok {
		return journal.ErrTaskNotFound
	}
	if err := t.SetPriorityLevel(cmd.Level); err != nil {
		return err
	}
	h.journal.MarkDirty()
	return nil
}

package commands

import (
	"context"

	journal "github.com/daybook-dev/daybook/internal/journal/domain"
	"github.com/daybook-dev/daybook/internal/productivity/domain/task"
	"github.com/google/uuid"
)

// AddSubtaskCommand appends a checklist entry to a task.
type AddSubtaskCommand struct {
	TaskID uuid.UUID
	Title  string
}

// ToggleSubtaskCommand flips a checklist entry. Completing the last open
// entry completes the whole task.
type ToggleSubtaskCommand struct {
	TaskID    uuid.UUID
	SubtaskID uuid.UUID
}

// RemoveSubtaskCommand deletes a checklist entry.
type RemoveSubtaskCommand struct {
	TaskID    uuid.UUID
	SubtaskID uuid.UUID
}

// SubtaskHandler groups the checklist operations, which all share the same
// lookup path.
type SubtaskHandler struct {
	journal Journal
}

// NewSubtaskHandler creates a new SubtaskHandler.
func NewSubtaskHandler(journal Journal) *SubtaskHandler {
	return &SubtaskHandler{journal: journal}
}

// HandleAdd appends the entry and returns it.
func (h *SubtaskHandler) HandleAdd(_ context.Context, cmd AddSubtaskCommand) (task.Subtask, error) {
	t, err := h.find(cmd.TaskID)
	if err != nil {
		return task.Subtask{}, err
	}
	st, err := t.AddSubtask(cmd.Title)
	if err != nil {
		return task.Subtask{}, err
	}
	h.journal.MarkDirty()
	return st, nil
}

// HandleToggle flips the entry and reports the task's new progress.
func (h *SubtaskHandler) HandleToggle(ctx context.Context, cmd ToggleSubtaskCommand) (int, error) {
	t, err := h.find(cmd.TaskID)
	if err != nil {
		return 0, err
	}
	if err := t.ToggleSubtask(cmd.SubtaskID); err != nil {
		return 0, err
	}
	h.journal.PublishAll(ctx, t)
	h.journal.MarkDirty()
	return t.Progress(), nil
}

// HandleRemove deletes the entry.
func (h *SubtaskHandler) HandleRemove(_ context.Context, cmd RemoveSubtaskCommand) error {
	t, err := h.find(cmd.TaskID)
	if err != nil {
		return err
	}
	if err := t.RemoveSubtask(cmd.SubtaskID); err != nil {
		return err
	}
	h.journal.MarkDirty()
	return nil
}

func (h *SubtaskHandler) find(id uuid.UUID) (*task.Task, error) {
	bucket, err := h.journal.MutableBucket()
	if err != nil {
		return nil, err
	}
	t, ok := bucket.FindTask(id)
	if !ok {
		return nil, journal.ErrTaskNotFound
	}
	return t, nil
}

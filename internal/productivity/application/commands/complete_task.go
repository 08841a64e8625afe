package commands

import (
	"context"

	journal "github.com/daybook-dev/daybook/internal/journal/domain"
	"github.com/daybook-dev/daybook/internal/productivity/application/services"
	"github.com/google/uuid"
)

// CompleteTaskCommand marks a task done.
type CompleteTaskCommand struct {
	TaskID uuid.UUID
}

// CompleteTaskResult reports what completion did: a recurring task is
// rescheduled instead of staying done.
type CompleteTaskResult struct {
	Rescheduled bool
}

// CompleteTaskHandler runs the completion and rescores, since a rescheduled
// due date changes the urgency signals.
type CompleteTaskHandler struct {
	journal Journal
	engine  *services.PriorityEngine
}

// NewCompleteTaskHandler creates a new CompleteTaskHandler.
func NewCompleteTaskHandler(journal Journal, engine *services.PriorityEngine) *CompleteTaskHandler {
	return &CompleteTaskHandler{journal: journal, engine: engine}
}

// Handle executes the completion.
func (h *CompleteTaskHandler) Handle(ctx context.Context, cmd CompleteTaskCommand) (*CompleteTaskResult, error) {
	bucket, err := h.journal.MutableBucket()
	if err != nil {
		return nil, err
	}

	t, ok := bucket.FindTask(cmd.TaskID)
	if !ok {
		return nil, journal.ErrTaskNotFound
	}

	t.Complete()
	h.engine.Rescore(t)
	h.journal.PublishAll(ctx, t)
	h.journal.MarkDirty()

	return &CompleteTaskResult{Rescheduled: !t.Done()}, nil
}

// ReopenTaskCommand clears a task's done flag.
type ReopenTaskCommand struct {
	TaskID uuid.UUID
}

// ReopenTaskHandler reopens completed tasks.
type ReopenTaskHandler struct {
	journal Journal
}

// NewReopenTaskHandler creates a new ReopenTaskHandler.
func NewReopenTaskHandler(journal Journal) *ReopenTaskHandler {
	return &ReopenTaskHandler{journal: journal}
}

// Handle executes the reopen.
func (h *ReopenTaskHandler) Handle(_ context.Context, cmd ReopenTaskCommand) error {
	bucket, err := h.journal.MutableBucket()
	if err != nil {
		return err
	}

	t, ok := bucket.FindTask(cmd.TaskID)
	if !ok {
		return journal.ErrTaskNotFound
	}
	t.Reopen()
	h.journal.MarkDirty()
	return nil
}

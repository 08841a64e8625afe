package commands

import (
	"context"
	"errors"

	"github.com/daybook-dev/daybook/internal/journal/application"
	"github.com/daybook-dev/daybook/internal/journal/domain"
	"github.com/daybook-dev/daybook/internal/productivity/application/services"
	"github.com/daybook-dev/daybook/internal/productivity/domain/task"
	"github.com/google/uuid"
)

// ErrAlreadyPromoted signals that a task for this note already exists and the
// caller must confirm before a duplicate is created.
var ErrAlreadyPromoted = errors.New("note already has a task")

// PromoteNoteCommand turns a note into a task. The note stays where it is.
type PromoteNoteCommand struct {
	NoteID uuid.UUID
	// ConfirmDuplicate allows promoting a note that already has a task.
	ConfirmDuplicate bool
}

// PromoteNoteHandler creates a boosted task from a note.
type PromoteNoteHandler struct {
	session *application.Session
	engine  *services.PriorityEngine
}

// NewPromoteNoteHandler creates a new PromoteNoteHandler.
func NewPromoteNoteHandler(session *application.Session, engine *services.PriorityEngine) *PromoteNoteHandler {
	return &PromoteNoteHandler{session: session, engine: engine}
}

// Handle executes the promotion and returns the created task.
func (h *PromoteNoteHandler) Handle(ctx context.Context, cmd PromoteNoteCommand) (*task.Task, error) {
	bucket, err := h.session.MutableBucket()
	if err != nil {
		return nil, err
	}

	note, ok := bucket.FindNote(cmd.NoteID)
	if !ok {
		return nil, domain.ErrNoteNotFound
	}

	if !cmd.ConfirmDuplicate {
		for _, t := range bucket.Tasks {
			if t.NoteID() == cmd.NoteID {
				return nil, ErrAlreadyPromoted
			}
		}
	}

	t, err := task.NewFromNote(note.ID(), note.DisplayTitle(), note.Text())
	if err != nil {
		return nil, err
	}
	h.engine.RescoreWithBoost(t)

	bucket.Tasks = append(bucket.Tasks, t)
	h.session.PublishAll(ctx, t)
	h.session.MarkDirty()
	return t, nil
}

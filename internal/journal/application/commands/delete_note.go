package commands

import (
	"context"

	"github.com/daybook-dev/daybook/internal/journal/application"
	"github.com/daybook-dev/daybook/internal/journal/domain"
	"github.com/google/uuid"
)

// DeleteNoteCommand removes a note, its blobs, and every task promoted
// from it.
type DeleteNoteCommand struct {
	NoteID uuid.UUID
}

// DeleteNoteHandler performs the cascading delete.
type DeleteNoteHandler struct {
	session *application.Session
}

// NewDeleteNoteHandler creates a new DeleteNoteHandler.
func NewDeleteNoteHandler(session *application.Session) *DeleteNoteHandler {
	return &DeleteNoteHandler{session: session}
}

// Handle executes the delete. Blob deletion failures are logged and skipped;
// the note and its tasks go away regardless, so a broken blob store can at
// worst leave orphaned blobs behind.
func (h *DeleteNoteHandler) Handle(ctx context.Context, cmd DeleteNoteCommand) error {
	bucket, err := h.session.MutableBucket()
	if err != nil {
		return err
	}

	note, ok := bucket.FindNote(cmd.NoteID)
	if !ok {
		return domain.ErrNoteNotFound
	}

	for _, blobID := range note.OwnedBlobs() {
		if err := h.session.Blobs().Delete(ctx, blobID); err != nil {
			h.session.Logger().Warn("failed to delete blob",
				"blob_id", blobID, "note_id", cmd.NoteID, "error", err)
		}
	}

	kept := bucket.Tasks[:0]
	for _, t := range bucket.Tasks {
		if t.NoteID() != cmd.NoteID {
			kept = append(kept, t)
		}
	}
	bucket.Tasks = kept

	notes := make([]*domain.Note, 0, len(bucket.Notes)-1)
	for _, n := range bucket.Notes {
		if n.ID() != cmd.NoteID {
			notes = append(notes, n)
		}
	}
	bucket.Notes = notes

	h.session.Publish(ctx, domain.NewNoteDeleted(cmd.NoteID))
	h.session.MarkDirty()
	return nil
}

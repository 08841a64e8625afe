package commands

import (
	"context"

	"github.com/daybook-dev/daybook/internal/journal/application"
	"github.com/daybook-dev/daybook/internal/journal/domain"
	"github.com/daybook-dev/daybook/internal/productivity/domain/task"
)

// ClearScope selects what a clear removes from the live bucket.
type ClearScope string

const (
	ClearNotes ClearScope = "notes"
	ClearTasks ClearScope = "tasks"
	ClearAll   ClearScope = "all"
)

// ClearDayCommand wipes the live bucket's notes, tasks, or both.
type ClearDayCommand struct {
	Scope ClearScope
}

// ClearDayHandler empties the requested parts of the live bucket, releasing
// the blobs owned by cleared notes.
type ClearDayHandler struct {
	session *application.Session
}

// NewClearDayHandler creates a new ClearDayHandler.
func NewClearDayHandler(session *application.Session) *ClearDayHandler {
	return &ClearDayHandler{session: session}
}

// Handle executes the clear and reports how many items were removed.
func (h *ClearDayHandler) Handle(ctx context.Context, cmd ClearDayCommand) (int, error) {
	bucket, err := h.session.MutableBucket()
	if err != nil {
		return 0, err
	}

	removed := 0
	if cmd.Scope == ClearNotes || cmd.Scope == ClearAll {
		removed += len(bucket.Notes)
		h.releaseBlobs(ctx, bucket.Notes)
		bucket.Notes = []*domain.Note{}
		// Clearing the notes orphans any promoted tasks' back-links, which
		// is fine: the tasks keep living on their own.
	}
	if cmd.Scope == ClearTasks || cmd.Scope == ClearAll {
		removed += len(bucket.Tasks)
		bucket.Tasks = []*task.Task{}
	}

	if removed > 0 {
		h.session.MarkDirty()
	}
	return removed, nil
}

func (h *ClearDayHandler) releaseBlobs(ctx context.Context, notes []*domain.Note) {
	for _, n := range notes {
		for _, blobID := range n.OwnedBlobs() {
			if err := h.session.Blobs().Delete(ctx, blobID); err != nil {
				h.session.Logger().Warn("failed to delete blob",
					"blob_id", blobID, "note_id", n.ID(), "error", err)
			}
		}
	}
}

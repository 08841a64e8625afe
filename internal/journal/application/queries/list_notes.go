package queries

import (
	"context"
	"time"

	"github.com/daybook-dev/daybook/internal/journal/application"
	"github.com/google/uuid"
)

// NoteView is the listing row for one note.
type NoteView struct {
	ID          uuid.UUID
	Title       string
	Text        string
	HasAudio    bool
	Attachments int
	Promoted    bool
	CreatedAt   time.Time
}

// ListNotesQuery lists the notes of the active day.
type ListNotesQuery struct{}

// ListNotesHandler builds the note listing.
type ListNotesHandler struct {
	session *application.Session
}

// NewListNotesHandler creates a new ListNotesHandler.
func NewListNotesHandler(session *application.Session) *ListNotesHandler {
	return &ListNotesHandler{session: session}
}

// Handle returns the active day's notes in capture order, flagging notes
// that already have a promoted task.
func (h *ListNotesHandler) Handle(_ context.Context, _ ListNotesQuery) ([]NoteView, error) {
	bucket := h.session.ActiveBucket()

	promoted := make(map[uuid.UUID]bool, len(bucket.Tasks))
	for _, t := range bucket.Tasks {
		if t.NoteID() != uuid.Nil {
			promoted[t.NoteID()] = true
		}
	}

	views := make([]NoteView, 0, len(bucket.Notes))
	for _, n := range bucket.Notes {
		views = append(views, NoteView{
			ID:          n.ID(),
			Title:       n.DisplayTitle(),
			Text:        n.Text(),
			HasAudio:    n.Audio() != nil,
			Attachments: len(n.Attachments()),
			Promoted:    promoted[n.ID()],
			CreatedAt:   n.CreatedAt(),
		})
	}
	return views, nil
}

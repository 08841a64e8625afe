package commands

import (
	"context"
	"fmt"

	"github.com/daybook-dev/daybook/internal/journal/application"
	"github.com/daybook-dev/daybook/internal/journal/domain"
	"github.com/google/uuid"
)

// AttachFileCommand adds an opaque attachment blob to a note.
type AttachFileCommand struct {
	NoteID uuid.UUID
	Name   string
	Mime   string
	Data   []byte
}

// AttachFileHandler stores the blob and links it to the note.
type AttachFileHandler struct {
	session *application.Session
}

// NewAttachFileHandler creates a new AttachFileHandler.
func NewAttachFileHandler(session *application.Session) *AttachFileHandler {
	return &AttachFileHandler{session: session}
}

// Handle executes the attachment.
func (h *AttachFileHandler) Handle(ctx context.Context, cmd AttachFileCommand) (uuid.UUID, error) {
	bucket, err := h.session.MutableBucket()
	if err != nil {
		return uuid.Nil, err
	}

	note, ok := bucket.FindNote(cmd.NoteID)
	if !ok {
		return uuid.Nil, domain.ErrNoteNotFound
	}

	blobID := uuid.New()
	if err := h.session.Blobs().Put(ctx, blobID, cmd.Mime, cmd.Data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to store attachment blob: %w", err)
	}

	note.AddAttachment(domain.BlobRef{ID: blobID, Mime: cmd.Mime, Name: cmd.Name})
	h.session.MarkDirty()
	return blobID, nil
}

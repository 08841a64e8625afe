// Package commands holds the journal command handlers. Every mutation runs
// against the session's live bucket; viewing an archived day makes all of
// them fail with ErrDayReadOnly before touching anything.
package commands

import (
	"context"
	"fmt"

	"github.com/daybook-dev/daybook/internal/journal/application"
	"github.com/daybook-dev/daybook/internal/journal/domain"
	"github.com/google/uuid"
)

// RecorderFactory opens a capture device for the given source.
type RecorderFactory func(source string) domain.Recorder

// CaptureNoteCommand contains the data for capturing a note. A non-empty
// AudioSource attaches a recording.
type CaptureNoteCommand struct {
	Title       string
	Text        string
	AudioSource string
}

// CaptureNoteResult reports the created note.
type CaptureNoteResult struct {
	NoteID  uuid.UUID
	AudioID uuid.UUID // uuid.Nil when no audio was captured
}

// CaptureNoteHandler captures a note, optionally with a recording.
type CaptureNoteHandler struct {
	session     *application.Session
	recorderFor RecorderFactory
}

// NewCaptureNoteHandler creates a new CaptureNoteHandler.
func NewCaptureNoteHandler(session *application.Session, recorderFor RecorderFactory) *CaptureNoteHandler {
	return &CaptureNoteHandler{session: session, recorderFor: recorderFor}
}

// Handle executes the capture. A denied capture permission aborts only this
// action and leaves prior state untouched.
func (h *CaptureNoteHandler) Handle(ctx context.Context, cmd CaptureNoteCommand) (*CaptureNoteResult, error) {
	bucket, err := h.session.MutableBucket()
	if err != nil {
		return nil, err
	}

	note, err := domain.NewNote(cmd.Title, cmd.Text)
	if err != nil {
		return nil, err
	}

	result := &CaptureNoteResult{NoteID: note.ID()}

	if cmd.AudioSource != "" {
		rec, err := h.record(ctx, cmd.AudioSource)
		if err != nil {
			return nil, err
		}
		audioID := uuid.New()
		if err := h.session.Blobs().Put(ctx, audioID, rec.Mime, rec.Data); err != nil {
			return nil, fmt.Errorf("failed to store audio blob: %w", err)
		}
		note.AttachAudio(domain.BlobRef{ID: audioID, Mime: rec.Mime})
		result.AudioID = audioID
	}

	bucket.Notes = append(bucket.Notes, note)
	h.session.PublishAll(ctx, note)
	h.session.MarkDirty()

	return result, nil
}

func (h *CaptureNoteHandler) record(ctx context.Context, source string) (domain.Recording, error) {
	if h.recorderFor == nil {
		return domain.Recording{}, domain.ErrCaptureDenied
	}
	recorder := h.recorderFor(source)

	h.session.SetRecording(true)
	defer h.session.SetRecording(false)

	if err := recorder.Start(ctx); err != nil {
		return domain.Recording{}, err
	}
	return recorder.Stop(ctx)
}

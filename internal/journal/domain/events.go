package domain

import (
	shared "github.com/daybook-dev/daybook/internal/shared/domain"
	"github.com/google/uuid"
)

// NoteCaptured is emitted when a note enters the live bucket.
type NoteCaptured struct {
	shared.BaseEvent
	Title string
}

// NewNoteCaptured builds a NoteCaptured event.
func NewNoteCaptured(noteID uuid.UUID, title string) NoteCaptured {
	return NoteCaptured{
		BaseEvent: shared.NewBaseEvent(noteID, "Note", "note.captured"),
		Title:     title,
	}
}

// NoteDeleted is emitted after a note and its owned blobs are removed.
type NoteDeleted struct {
	shared.BaseEvent
}

// NewNoteDeleted builds a NoteDeleted event.
func NewNoteDeleted(noteID uuid.UUID) NoteDeleted {
	return NoteDeleted{
		BaseEvent: shared.NewBaseEvent(noteID, "Note", "note.deleted"),
	}
}

// DayRotated is emitted when the live bucket is archived.
type DayRotated struct {
	shared.BaseEvent
	SourceDay  shared.DayKey
	ArchiveKey shared.DayKey
}

// NewDayRotated builds a DayRotated event.
func NewDayRotated(sourceDay, archiveKey shared.DayKey) DayRotated {
	return DayRotated{
		BaseEvent:  shared.NewBaseEvent(uuid.New(), "Day", "day.rotated"),
		SourceDay:  sourceDay,
		ArchiveKey: archiveKey,
	}
}

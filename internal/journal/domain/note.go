// Package domain holds the journal aggregates: captured notes and the
// day-bucket state with its live/archive rules.
package domain

import (
	"errors"
	"strings"
	"time"

	shared "github.com/daybook-dev/daybook/internal/shared/domain"
	"github.com/google/uuid"
)

var ErrEmptyNote = errors.New("note needs a title or text")

// BlobRef points at an opaque blob in the blob store.
type BlobRef struct {
	ID   uuid.UUID `json:"id"`
	Mime string    `json:"mime"`
	Name string    `json:"name,omitempty"`
}

// Note is a captured thought, optionally with recorded audio and file
// attachments. The note owns its blobs: deleting the note releases them.
type Note struct {
	shared.BaseAggregateRoot
	title       string
	text        string
	audio       *BlobRef
	attachments []BlobRef
}

// NewNote captures a note. Title or text is required.
func NewNote(title, text string) (*Note, error) {
	title = strings.TrimSpace(title)
	text = strings.TrimSpace(text)
	if title == "" && text == "" {
		return nil, ErrEmptyNote
	}
	n := &Note{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		title:             title,
		text:              text,
	}
	n.AddDomainEvent(NewNoteCaptured(n.ID(), n.title))
	return n, nil
}

func (n *Note) Title() string          { return n.title }
func (n *Note) Text() string           { return n.text }
func (n *Note) Audio() *BlobRef        { return n.audio }
func (n *Note) Attachments() []BlobRef { return n.attachments }

// DisplayTitle falls back to the text when no title was given.
func (n *Note) DisplayTitle() string {
	if n.title != "" {
		return n.title
	}
	return n.text
}

// AttachAudio links a finished recording to the note.
func (n *Note) AttachAudio(ref BlobRef) {
	n.audio = &ref
	n.Touch()
}

// AddAttachment appends a file blob reference.
func (n *Note) AddAttachment(ref BlobRef) {
	n.attachments = append(n.attachments, ref)
	n.Touch()
}

// OwnedBlobs returns every blob id the note owns, audio first.
func (n *Note) OwnedBlobs() []uuid.UUID {
	var ids []uuid.UUID
	if n.audio != nil {
		ids = append(ids, n.audio.ID)
	}
	for _, ref := range n.attachments {
		ids = append(ids, ref.ID)
	}
	return ids
}

// NoteSnapshot is the persisted form of a note.
type NoteSnapshot struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title,omitempty"`
	Text        string    `json:"text,omitempty"`
	Audio       *BlobRef  `json:"audio,omitempty"`
	Attachments []BlobRef `json:"attachments,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Snapshot captures the note for persistence.
func (n *Note) Snapshot() NoteSnapshot {
	return NoteSnapshot{
		ID:          n.ID(),
		Title:       n.title,
		Text:        n.text,
		Audio:       n.audio,
		Attachments: n.attachments,
		CreatedAt:   n.CreatedAt(),
		UpdatedAt:   n.UpdatedAt(),
	}
}

// NoteFromSnapshot rebuilds a note from persisted state without events.
func NoteFromSnapshot(s NoteSnapshot) (*Note, error) {
	if s.Title == "" && s.Text == "" {
		return nil, ErrEmptyNote
	}
	return &Note{
		BaseAggregateRoot: shared.RehydrateBaseAggregateRoot(
			shared.RehydrateBaseEntity(s.ID, s.CreatedAt, s.UpdatedAt),
		),
		title:       s.Title,
		text:        s.Text,
		audio:       s.Audio,
		attachments: s.Attachments,
	}, nil
}

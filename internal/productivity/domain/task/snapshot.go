package task

import (
	"time"

	"github.com/daybook-dev/daybook/internal/shared/domain"
	"github.com/google/uuid"
)

// SubtaskSnapshot is the persisted form of a checklist entry.
type SubtaskSnapshot struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Done  bool      `json:"done"`
}

// Snapshot is the persisted form of a task.
type Snapshot struct {
	ID             uuid.UUID         `json:"id"`
	NoteID         uuid.UUID         `json:"noteId,omitempty"`
	Source         Source            `json:"source"`
	Title          string            `json:"title"`
	Details        string            `json:"details,omitempty"`
	Mode           Mode              `json:"mode"`
	PriorityLevel  int               `json:"priorityLevel"`
	PriorityLocked bool              `json:"priorityLocked"`
	DoDate         domain.DayKey     `json:"doDate,omitempty"`
	DueDate        domain.DayKey     `json:"dueDate,omitempty"`
	Recurrence     Recurrence        `json:"recurrence"`
	Done           bool              `json:"done"`
	Subtasks       []SubtaskSnapshot `json:"subtasks,omitempty"`
	Score          int               `json:"score"`
	Tier           Tier              `json:"tier"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// Snapshot captures the task for persistence.
func (t *Task) Snapshot() Snapshot {
	subs := make([]SubtaskSnapshot, 0, len(t.subtasks))
	for _, st := range t.subtasks {
		subs = append(subs, SubtaskSnapshot(st))
	}
	return Snapshot{
		ID:             t.ID(),
		NoteID:         t.noteID,
		Source:         t.source,
		Title:          t.title,
		Details:        t.details,
		Mode:           t.mode,
		PriorityLevel:  t.priorityLevel,
		PriorityLocked: t.priorityLocked,
		DoDate:         t.doDate,
		DueDate:        t.dueDate,
		Recurrence:     t.recurrence,
		Done:           t.done,
		Subtasks:       subs,
		Score:          t.score,
		Tier:           t.tier,
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

// FromSnapshot rebuilds a task from persisted state without raising events.
func FromSnapshot(s Snapshot) (*Task, error) {
	title := s.Title
	if title == "" {
		return nil, ErrEmptyTitle
	}
	subs := make([]Subtask, 0, len(s.Subtasks))
	for _, st := range s.Subtasks {
		subs = append(subs, Subtask(st))
	}
	t := &Task{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(
			domain.RehydrateBaseEntity(s.ID, s.CreatedAt, s.UpdatedAt),
		),
		noteID:         s.NoteID,
		source:         s.Source,
		title:          title,
		details:        s.Details,
		mode:           s.Mode,
		priorityLevel:  s.PriorityLevel,
		priorityLocked: s.PriorityLocked,
		doDate:         s.DoDate,
		dueDate:        s.DueDate,
		recurrence:     s.Recurrence,
		done:           s.Done,
		subtasks:       subs,
		score:          s.Score,
		tier:           s.Tier,
	}
	return t, nil
}

// Package task holds the task aggregate and the pure scheduling logic built
// on it: recurrence advancement, time-view membership, and display ordering.
package task

import (
	"errors"
	"math"
	"strings"

	"github.com/daybook-dev/daybook/internal/shared/domain"
	"github.com/google/uuid"
)

var (
	ErrEmptyTitle      = errors.New("task title cannot be empty")
	ErrInvalidLevel    = errors.New("priority level must be between 1 and 5")
	ErrInvalidMode     = errors.New("unknown task mode")
	ErrSubtaskNotFound = errors.New("subtask not found")
)

// Mode categorizes how a task should be acted on and seeds its default
// priority level.
type Mode string

const (
	ModeImmediate Mode = "IMMEDIATE"
	ModeQuick     Mode = "QUICK"
	ModeScheduled Mode = "SCHEDULED"
	ModeErrand    Mode = "ERRAND"
	ModeRemember  Mode = "REMEMBER"
	ModeWaiting   Mode = "WAITING"
)

// ParseMode normalizes and validates a mode string.
func ParseMode(raw string) (Mode, error) {
	switch m := Mode(strings.ToUpper(strings.TrimSpace(raw))); m {
	case ModeImmediate, ModeQuick, ModeScheduled, ModeErrand, ModeRemember, ModeWaiting:
		return m, nil
	default:
		return "", ErrInvalidMode
	}
}

// DefaultLevel returns the priority level a mode derives when the user has
// not locked one explicitly.
func (m Mode) DefaultLevel() int {
	switch m {
	case ModeImmediate:
		return 1
	case ModeQuick:
		return 2
	case ModeScheduled, ModeErrand:
		return 3
	case ModeRemember:
		return 4
	case ModeWaiting:
		return 5
	default:
		return 3
	}
}

// Tier is the coarse priority bucket derived from the numeric score.
type Tier string

const (
	TierP1 Tier = "P1"
	TierP2 Tier = "P2"
	TierP3 Tier = "P3"
)

// Source records where a task came from.
type Source string

const (
	SourceManual Source = "manual"
	SourceVoice  Source = "voice"
)

// Subtask is a checklist entry owned by a task.
type Subtask struct {
	ID    uuid.UUID
	Title string
	Done  bool
}

// Task is a unit of work inside a day bucket.
type Task struct {
	domain.BaseAggregateRoot
	noteID         uuid.UUID // uuid.Nil unless promoted from a note
	source         Source
	title          string
	details        string
	mode           Mode
	priorityLevel  int
	priorityLocked bool
	doDate         domain.DayKey
	dueDate        domain.DayKey
	recurrence     Recurrence
	done           bool
	subtasks       []Subtask
	score          int
	tier           Tier
}

// New creates a task with the given title and mode.
func New(title string, mode Mode) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if mode == "" {
		mode = ModeQuick
	}

	t := &Task{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		source:            SourceManual,
		title:             title,
		mode:              mode,
		priorityLevel:     mode.DefaultLevel(),
		recurrence:        Recurrence{Type: RecurrenceNone, Interval: 1},
		tier:              TierP3,
	}
	t.AddDomainEvent(NewCreated(t.ID(), t.title))
	return t, nil
}

// NewFromNote creates a task promoted from a captured note.
func NewFromNote(noteID uuid.UUID, title string, details string) (*Task, error) {
	t, err := New(title, ModeQuick)
	if err != nil {
		return nil, err
	}
	t.noteID = noteID
	t.source = SourceVoice
	t.details = details
	return t, nil
}

// Getters

func (t *Task) NoteID() uuid.UUID      { return t.noteID }
func (t *Task) Source() Source         { return t.source }
func (t *Task) Title() string          { return t.title }
func (t *Task) Details() string        { return t.details }
func (t *Task) Mode() Mode             { return t.mode }
func (t *Task) PriorityLevel() int     { return t.priorityLevel }
func (t *Task) PriorityLocked() bool   { return t.priorityLocked }
func (t *Task) DoDate() domain.DayKey  { return t.doDate }
func (t *Task) DueDate() domain.DayKey { return t.dueDate }
func (t *Task) Recurrence() Recurrence { return t.recurrence }
func (t *Task) Done() bool             { return t.done }
func (t *Task) Subtasks() []Subtask    { return t.subtasks }
func (t *Task) Score() int             { return t.score }
func (t *Task) Tier() Tier             { return t.tier }

// SetTitle updates the task title.
func (t *Task) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	t.title = title
	t.Touch()
	return nil
}

// SetDetails updates the free-text details.
func (t *Task) SetDetails(details string) {
	t.details = strings.TrimSpace(details)
	t.Touch()
}

// SetMode updates the mode and, unless the user locked a level, re-derives
// the priority level from it.
func (t *Task) SetMode(mode Mode) {
	t.mode = mode
	if !t.priorityLocked {
		t.priorityLevel = mode.DefaultLevel()
	}
	t.Touch()
}

// SetPriorityLevel sets a user-chosen level. The level is locked afterwards
// and mode changes no longer re-derive it.
func (t *Task) SetPriorityLevel(level int) error {
	if level < 1 || level > 5 {
		return ErrInvalidLevel
	}
	t.priorityLevel = level
	t.priorityLocked = true
	t.Touch()
	return nil
}

// SetDoDate updates the do date. An empty key clears it.
func (t *Task) SetDoDate(key domain.DayKey) error {
	if !key.IsZero() && !key.Valid() {
		return domain.ErrInvalidDayKey
	}
	t.doDate = key
	t.Touch()
	return nil
}

// SetDueDate updates the due date. An empty key clears it.
func (t *Task) SetDueDate(key domain.DayKey) error {
	if !key.IsZero() && !key.Valid() {
		return domain.ErrInvalidDayKey
	}
	t.dueDate = key
	t.Touch()
	return nil
}

// DatesInverted reports a do date after the due date. This is advisory: the
// UI warns but the dates are kept as entered.
func (t *Task) DatesInverted() bool {
	return !t.doDate.IsZero() && !t.dueDate.IsZero() && t.doDate > t.dueDate
}

// SetRecurrence updates the recurrence rule.
func (t *Task) SetRecurrence(r Recurrence) error {
	if err := r.Validate(); err != nil {
		return err
	}
	t.recurrence = r
	t.Touch()
	return nil
}

// SetScore records the derived score and tier computed by the priority engine.
func (t *Task) SetScore(score int, tier Tier) {
	t.score = score
	t.tier = tier
}

// Complete marks the task done. A recurring task is never left completed:
// its do date (or, failing that, its due date) advances by the recurrence
// rule and done resets to false in the same operation.
func (t *Task) Complete() {
	if t.recurrence.Type != RecurrenceNone {
		if next, ok := Advance(t.doDate, t.recurrence); ok {
			t.doDate = next
		} else if next, ok := Advance(t.dueDate, t.recurrence); ok {
			t.dueDate = next
		}
		t.done = false
		t.Touch()
		t.AddDomainEvent(NewRescheduled(t.ID(), t.doDate, t.dueDate))
		return
	}

	if t.done {
		return
	}
	t.done = true
	t.Touch()
	t.AddDomainEvent(NewCompleted(t.ID()))
}

// Reopen clears the done flag.
func (t *Task) Reopen() {
	if !t.done {
		return
	}
	t.done = false
	t.Touch()
}

// AddSubtask appends a checklist entry.
func (t *Task) AddSubtask(title string) (Subtask, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Subtask{}, ErrEmptyTitle
	}
	st := Subtask{ID: uuid.New(), Title: title}
	t.subtasks = append(t.subtasks, st)
	t.Touch()
	return st, nil
}

// ToggleSubtask flips a checklist entry. Reaching full progress auto-marks
// the task done through the normal completion path.
func (t *Task) ToggleSubtask(id uuid.UUID) error {
	for i := range t.subtasks {
		if t.subtasks[i].ID == id {
			t.subtasks[i].Done = !t.subtasks[i].Done
			t.Touch()
			if !t.done && t.Progress() == 100 {
				t.Complete()
			}
			return nil
		}
	}
	return ErrSubtaskNotFound
}

// RemoveSubtask deletes a checklist entry.
func (t *Task) RemoveSubtask(id uuid.UUID) error {
	for i := range t.subtasks {
		if t.subtasks[i].ID == id {
			t.subtasks = append(t.subtasks[:i], t.subtasks[i+1:]...)
			t.Touch()
			return nil
		}
	}
	return ErrSubtaskNotFound
}

// Progress returns the subtask completion percentage, rounded to the nearest
// percent. A task without subtasks has zero progress.
func (t *Task) Progress() int {
	if len(t.subtasks) == 0 {
		return 0
	}
	done := 0
	for _, st := range t.subtasks {
		if st.Done {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(t.subtasks)) * 100))
}

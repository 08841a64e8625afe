package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/daybook-dev/daybook/internal/productivity/domain/task"
	shared "github.com/daybook-dev/daybook/internal/shared/domain"
	"github.com/google/uuid"
)

var (
	// ErrDayReadOnly rejects mutations while viewing anything but the live
	// (today) bucket. This is the only access-control rule in the system.
	ErrDayReadOnly = errors.New("viewing an archived day: read-only")
	ErrDayNotFound = errors.New("no bucket for that day")
	ErrNoteNotFound = errors.New("note not found")
	ErrTaskNotFound = errors.New("task not found")
)

// Bucket holds the notes and tasks of one day. Archived buckets additionally
// carry their archive timestamp and the day they were rotated from.
type Bucket struct {
	Notes []*Note
	Tasks []*task.Task

	ArchivedAt *time.Time
	SourceDay  shared.DayKey
}

// NewBucket returns an empty bucket.
func NewBucket() *Bucket {
	return &Bucket{Notes: []*Note{}, Tasks: []*task.Task{}}
}

// FindNote returns the note with the given id.
func (b *Bucket) FindNote(id uuid.UUID) (*Note, bool) {
	for _, n := range b.Notes {
		if n.ID() == id {
			return n, true
		}
	}
	return nil, false
}

// FindTask returns the task with the given id.
func (b *Bucket) FindTask(id uuid.UUID) (*task.Task, bool) {
	for _, t := range b.Tasks {
		if t.ID() == id {
			return t, true
		}
	}
	return nil, false
}

// State is the root of everything daybook persists: the day-key to bucket
// mapping and the single process-wide active-day pointer. Exactly one bucket
// (today's) is mutable at a time; every other key is a frozen archive.
type State struct {
	activeDayKey shared.DayKey
	days         map[shared.DayKey]*Bucket
}

// NewState creates a fresh state with an empty live bucket for today.
func NewState(today shared.DayKey) *State {
	return &State{
		activeDayKey: today,
		days:         map[shared.DayKey]*Bucket{today: NewBucket()},
	}
}

// RehydrateState rebuilds state from persistence.
func RehydrateState(activeDayKey shared.DayKey, days map[shared.DayKey]*Bucket) *State {
	if days == nil {
		days = map[shared.DayKey]*Bucket{}
	}
	return &State{activeDayKey: activeDayKey, days: days}
}

// ActiveDayKey returns the key currently being viewed.
func (s *State) ActiveDayKey() shared.DayKey { return s.activeDayKey }

// IsLive reports whether the active bucket is today's (mutable) bucket.
func (s *State) IsLive(today shared.DayKey) bool { return s.activeDayKey == today }

// Bucket returns the bucket for a key.
func (s *State) Bucket(key shared.DayKey) (*Bucket, error) {
	b, ok := s.days[key]
	if !ok {
		return nil, ErrDayNotFound
	}
	return b, nil
}

// ActiveBucket returns the bucket being viewed.
func (s *State) ActiveBucket() *Bucket {
	if b, ok := s.days[s.activeDayKey]; ok {
		return b
	}
	// The active key always has a bucket; repair if persistence lost it.
	b := NewBucket()
	s.days[s.activeDayKey] = b
	return b
}

// MutableBucket returns the active bucket iff it is live. Every note/task
// mutation goes through this guard.
func (s *State) MutableBucket(today shared.DayKey) (*Bucket, error) {
	if !s.IsLive(today) {
		return nil, ErrDayReadOnly
	}
	return s.ensure(today), nil
}

// Open switches the active day. Today's key is created on demand; any other
// key must already exist.
func (s *State) Open(key, today shared.DayKey) error {
	if _, ok := s.days[key]; !ok {
		if key != today {
			return ErrDayNotFound
		}
		s.days[key] = NewBucket()
	}
	s.activeDayKey = key
	return nil
}

// OpenToday points the session at today's bucket, creating it if needed.
// Called at startup so a state file persisted on a previous day lands on a
// fresh live bucket while the old day stays frozen under its own key.
func (s *State) OpenToday(today shared.DayKey) {
	s.ensure(today)
	s.activeDayKey = today
}

// Rotate archives the live bucket: its contents move verbatim under a fresh
// archive key tagged with the rotation time, and the live key is reset to an
// empty bucket. Rotation only fires when viewing the live day.
func (s *State) Rotate(today shared.DayKey, now time.Time) (shared.DayKey, error) {
	if !s.IsLive(today) {
		return "", ErrDayReadOnly
	}
	live := s.ensure(today)

	archiveKey := s.nextArchiveKey(today)
	archivedAt := now.UTC()
	live.ArchivedAt = &archivedAt
	live.SourceDay = today
	s.days[archiveKey] = live

	s.days[today] = NewBucket()
	return archiveKey, nil
}

// Keys returns all day keys in ascending order.
func (s *State) Keys() []shared.DayKey {
	keys := make([]shared.DayKey, 0, len(s.days))
	for k := range s.days {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Days exposes the underlying mapping for persistence.
func (s *State) Days() map[shared.DayKey]*Bucket { return s.days }

func (s *State) ensure(key shared.DayKey) *Bucket {
	b, ok := s.days[key]
	if !ok {
		b = NewBucket()
		s.days[key] = b
	}
	return b
}

// nextArchiveKey mints the smallest unused archive key for the day, so
// archive keys are unique and never collide with the live rotation target.
func (s *State) nextArchiveKey(today shared.DayKey) shared.DayKey {
	for n := 1; ; n++ {
		key := shared.DayKey(fmt.Sprintf("%s-archive-%d", today, n))
		if _, ok := s.days[key]; !ok {
			return key
		}
	}
}

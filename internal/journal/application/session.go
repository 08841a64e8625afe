// Package application wires the journal use cases around a single Session,
// the explicit owner of all previously-ambient state: the active day, the
// in-flight recording, and the pomodoro timer.
package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/daybook-dev/daybook/internal/journal/domain"
	"github.com/daybook-dev/daybook/internal/productivity/domain/pomodoro"
	shared "github.com/daybook-dev/daybook/internal/shared/domain"
	"github.com/daybook-dev/daybook/internal/shared/infrastructure/eventbus"
	"github.com/daybook-dev/daybook/internal/shared/infrastructure/persistence"
)

// SessionOptions configures a session.
type SessionOptions struct {
	// Now supplies the clock; defaults to time.Now.
	Now func() time.Time
	// FlushQuietPeriod is the write-behind debounce window.
	FlushQuietPeriod time.Duration
	// Pomodoro interval lengths.
	PomodoroWork  time.Duration
	PomodoroBreak time.Duration
}

// Session owns the in-memory root state and its persistence. All command and
// query handlers operate through it.
type Session struct {
	state   *domain.State
	repo    domain.StateRepository
	blobs   domain.BlobStore
	flusher *persistence.Flusher
	bus     *eventbus.Bus
	logger  *slog.Logger
	now     func() time.Time

	recording bool
	pomo      *pomodoro.Session
}

// NewSession loads persisted state (falling back to a fresh state for today
// when nothing or something malformed is found), runs the day-boundary
// check, and prepares the write-behind flusher.
func NewSession(
	ctx context.Context,
	repo domain.StateRepository,
	blobs domain.BlobStore,
	bus *eventbus.Bus,
	logger *slog.Logger,
	opts SessionOptions,
) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	today := shared.DayKeyOf(opts.Now())

	state, found, err := repo.Load(ctx)
	if err != nil {
		logger.Warn("persisted state unreadable, starting fresh", "error", err)
		state = domain.NewState(today)
	} else if !found {
		state = domain.NewState(today)
	}
	state.OpenToday(today)

	s := &Session{
		state:  state,
		repo:   repo,
		blobs:  blobs,
		bus:    bus,
		logger: logger,
		now:    opts.Now,
		pomo:   pomodoro.NewSession(opts.PomodoroWork, opts.PomodoroBreak),
	}
	s.flusher = persistence.NewFlusher(opts.FlushQuietPeriod, s.save, logger)
	return s, nil
}

func (s *Session) save(ctx context.Context) error {
	return s.repo.Save(ctx, s.state)
}

// Now returns the session clock reading.
func (s *Session) Now() time.Time { return s.now() }

// Today returns today's day key.
func (s *Session) Today() shared.DayKey { return shared.DayKeyOf(s.now()) }

// State exposes the root state for queries.
func (s *Session) State() *domain.State { return s.state }

// ActiveBucket returns the bucket being viewed.
func (s *Session) ActiveBucket() *domain.Bucket { return s.state.ActiveBucket() }

// MutableBucket returns the live bucket or ErrDayReadOnly.
func (s *Session) MutableBucket() (*domain.Bucket, error) {
	return s.state.MutableBucket(s.Today())
}

// Blobs returns the blob store.
func (s *Session) Blobs() domain.BlobStore { return s.blobs }

// Logger returns the session logger.
func (s *Session) Logger() *slog.Logger { return s.logger }

// Pomodoro returns the focus timer owned by this session.
func (s *Session) Pomodoro() *pomodoro.Session { return s.pomo }

// Recording reports whether a capture is in flight.
func (s *Session) Recording() bool { return s.recording }

// SetRecording tracks the in-flight capture state.
func (s *Session) SetRecording(active bool) { s.recording = active }

// MarkDirty schedules a debounced state flush.
func (s *Session) MarkDirty() { s.flusher.Mark() }

// Publish dispatches an event on the in-process bus.
func (s *Session) Publish(ctx context.Context, event shared.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(ctx, event)
	}
}

// PublishAll drains an aggregate's events onto the bus.
func (s *Session) PublishAll(ctx context.Context, aggregate shared.AggregateRoot) {
	if s.bus != nil {
		s.bus.PublishAll(ctx, aggregate)
	} else {
		aggregate.ClearDomainEvents()
	}
}

// Flush forces a state write.
func (s *Session) Flush(ctx context.Context) error { return s.flusher.Flush(ctx) }

// Close flushes pending state and releases the session.
func (s *Session) Close(ctx context.Context) error { return s.flusher.Close(ctx) }

// Reload replaces in-memory state with the persisted one, e.g. after an
// external writer changed it. No merge is attempted: the last writer wins
// and unflushed local changes are dropped.
func (s *Session) Reload(ctx context.Context) error {
	state, found, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if !found {
		state = domain.NewState(s.Today())
	}
	state.OpenToday(s.Today())
	s.state = state
	return nil
}

package persistence

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultQuietPeriod is how long the flusher waits after the last mutation
// before writing state out.
const DefaultQuietPeriod = 300 * time.Millisecond

// FlushFunc writes the current in-memory state to durable storage.
type FlushFunc func(ctx context.Context) error

// Flusher is a write-behind queue for state persistence. Mutations call Mark;
// the flush fires once a quiet period has passed with no further marks. A
// crash inside the window loses the most recent mutations, which is the
// accepted best-effort durability policy. Failed flushes are logged as
// warnings and the in-memory state stays authoritative until the next
// successful flush.
type Flusher struct {
	quiet  time.Duration
	flush  FlushFunc
	logger *slog.Logger

	mu     sync.Mutex
	timer  *time.Timer
	dirty  bool
	closed bool
}

// NewFlusher creates a flusher with the given quiet period.
func NewFlusher(quiet time.Duration, flush FlushFunc, logger *slog.Logger) *Flusher {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Flusher{
		quiet:  quiet,
		flush:  flush,
		logger: logger,
	}
}

// Mark records a mutation and (re)schedules the debounced flush.
func (f *Flusher) Mark() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.dirty = true
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(f.quiet, func() {
		if err := f.Flush(context.Background()); err != nil {
			f.logger.Warn("debounced flush failed, state kept in memory", "error", err)
		}
	})
}

// Flush writes state out immediately if there are unflushed mutations.
func (f *Flusher) Flush(ctx context.Context) error {
	f.mu.Lock()
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	if !f.dirty {
		f.mu.Unlock()
		return nil
	}
	f.dirty = false
	f.mu.Unlock()

	if err := f.flush(ctx); err != nil {
		f.mu.Lock()
		f.dirty = true
		f.mu.Unlock()
		return err
	}
	return nil
}

// Close flushes pending state and stops the flusher.
func (f *Flusher) Close(ctx context.Context) error {
	err := f.Flush(ctx)
	f.mu.Lock()
	f.closed = true
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.mu.Unlock()
	return err
}

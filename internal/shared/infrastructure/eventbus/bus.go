// Package eventbus provides a synchronous in-process event bus. Daybook is a
// single-user local application, so events are delivered inline on the
// mutating call instead of through a broker.
package eventbus

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/daybook-dev/daybook/internal/shared/domain"
)

// Handler consumes a domain event. Handler errors are logged, not propagated;
// a failing subscriber must not abort the originating operation.
type Handler func(ctx context.Context, event domain.DomainEvent) error

// Bus dispatches domain events to registered handlers.
type Bus struct {
	mu       sync.Mutex
	handlers map[string][]Handler
	logger   *slog.Logger
}

// New creates a new in-process event bus.
func New(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

// Subscribe registers a handler for a routing-key pattern. A pattern ending in
// ".*" matches any key with that prefix; otherwise the key must match exactly.
func (b *Bus) Subscribe(pattern string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[pattern] = append(b.handlers[pattern], handler)
}

// Publish delivers the event synchronously to every matching handler.
func (b *Bus) Publish(ctx context.Context, event domain.DomainEvent) {
	b.mu.Lock()
	var matched []Handler
	for pattern, handlers := range b.handlers {
		if matches(pattern, event.RoutingKey()) {
			matched = append(matched, handlers...)
		}
	}
	b.mu.Unlock()

	for _, handler := range matched {
		start := time.Now()
		if err := handler(ctx, event); err != nil {
			b.logger.Error("event handler failed",
				"routing_key", event.RoutingKey(),
				"event_id", event.EventID(),
				"error", err,
			)
			continue
		}
		b.logger.Debug("event dispatched",
			"routing_key", event.RoutingKey(),
			"event_id", event.EventID(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// PublishAll publishes the uncommitted events of an aggregate and clears them.
func (b *Bus) PublishAll(ctx context.Context, aggregate domain.AggregateRoot) {
	for _, event := range aggregate.DomainEvents() {
		b.Publish(ctx, event)
	}
	aggregate.ClearDomainEvents()
}

func matches(pattern, key string) bool {
	if prefix, ok := strings.CutSuffix(pattern, ".*"); ok {
		return strings.HasPrefix(key, prefix+".")
	}
	return pattern == key
}

package eventbus_test

import (
	"context"
	"errors"
	"testing"

	"github.com/daybook-dev/daybook/internal/shared/domain"
	"github.com/daybook-dev/daybook/internal/shared/infrastructure/eventbus"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type testEvent struct {
	domain.BaseEvent
}

func newTestEvent(key string) testEvent {
	return testEvent{BaseEvent: domain.NewBaseEvent(uuid.New(), "Test", key)}
}

func TestBus_Publish(t *testing.T) {
	t.Run("delivers to exact match", func(t *testing.T) {
		bus := eventbus.New(nil)
		var seen []string
		bus.Subscribe("note.captured", func(ctx context.Context, e domain.DomainEvent) error {
			seen = append(seen, e.RoutingKey())
			return nil
		})

		bus.Publish(context.Background(), newTestEvent("note.captured"))
		bus.Publish(context.Background(), newTestEvent("note.deleted"))

		assert.Equal(t, []string{"note.captured"}, seen)
	})

	t.Run("delivers to prefix pattern", func(t *testing.T) {
		bus := eventbus.New(nil)
		count := 0
		bus.Subscribe("task.*", func(ctx context.Context, e domain.DomainEvent) error {
			count++
			return nil
		})

		bus.Publish(context.Background(), newTestEvent("task.created"))
		bus.Publish(context.Background(), newTestEvent("task.completed"))
		bus.Publish(context.Background(), newTestEvent("taskforce.created"))

		assert.Equal(t, 2, count)
	})

	t.Run("handler error does not stop other handlers", func(t *testing.T) {
		bus := eventbus.New(nil)
		called := false
		bus.Subscribe("day.rotated", func(ctx context.Context, e domain.DomainEvent) error {
			return errors.New("boom")
		})
		bus.Subscribe("day.rotated", func(ctx context.Context, e domain.DomainEvent) error {
			called = true
			return nil
		})

		bus.Publish(context.Background(), newTestEvent("day.rotated"))

		assert.True(t, called)
	})
}

type testAggregate struct {
	domain.BaseAggregateRoot
}

func TestBus_PublishAll(t *testing.T) {
	bus := eventbus.New(nil)
	count := 0
	bus.Subscribe("test.*", func(ctx context.Context, e domain.DomainEvent) error {
		count++
		return nil
	})

	agg := &testAggregate{BaseAggregateRoot: domain.NewBaseAggregateRoot()}
	agg.AddDomainEvent(newTestEvent("test.one"))
	agg.AddDomainEvent(newTestEvent("test.two"))

	bus.PublishAll(context.Background(), agg)

	assert.Equal(t, 2, count)
	assert.Empty(t, agg.DomainEvents())
}

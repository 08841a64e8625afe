// Package commands holds the productivity command handlers. Tasks live
// inside the journal's day buckets, so every handler reaches them through
// the Journal port instead of a repository of its own.
package commands

import (
	"context"

	journal "github.com/daybook-dev/daybook/internal/journal/domain"
	shared "github.com/daybook-dev/daybook/internal/shared/domain"
)

// Journal is the slice of the journal session the task handlers need: access
// to the live bucket, dirty tracking, and event publishing.
type Journal interface {
	Today() shared.DayKey
	MutableBucket() (*journal.Bucket, error)
	ActiveBucket() *journal.Bucket
	MarkDirty()
	Publish(ctx context.Context, event shared.DomainEvent)
	PublishAll(ctx context.Context, aggregate shared.AggregateRoot)
}

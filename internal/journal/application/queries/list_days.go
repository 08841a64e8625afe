// Package queries holds the read side of the journal: day listings and note
// views derived from the in-memory state.
package queries

import (
	"context"
	"time"

	"github.com/daybook-dev/daybook/internal/journal/application"
	shared "github.com/daybook-dev/daybook/internal/shared/domain"
)

// DaySummary describes one day bucket for listing.
type DaySummary struct {
	Key        shared.DayKey
	Active     bool
	Live       bool
	ArchivedAt *time.Time
	SourceDay  shared.DayKey
	Notes      int
	Tasks      int
}

// ListDaysQuery lists every known day key.
type ListDaysQuery struct{}

// ListDaysHandler builds the day listing.
type ListDaysHandler struct {
	session *application.Session
}

// NewListDaysHandler creates a new ListDaysHandler.
func NewListDaysHandler(session *application.Session) *ListDaysHandler {
	return &ListDaysHandler{session: session}
}

// Handle returns all day summaries in ascending key order, so archives of a
// day follow the day itself.
func (h *ListDaysHandler) Handle(_ context.Context, _ ListDaysQuery) ([]DaySummary, error) {
	state := h.session.State()
	today := h.session.Today()

	keys := state.Keys()
	summaries := make([]DaySummary, 0, len(keys))
	for _, key := range keys {
		bucket, err := state.Bucket(key)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, DaySummary{
			Key:        key,
			Active:     key == state.ActiveDayKey(),
			Live:       key == today,
			ArchivedAt: bucket.ArchivedAt,
			SourceDay:  bucket.SourceDay,
			Notes:      len(bucket.Notes),
			Tasks:      len(bucket.Tasks),
		})
	}
	return summaries, nil
}

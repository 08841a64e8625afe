package queries

import (
	"context"

	"github.com/daybook-dev/daybook/internal/journal/application"
	"github.com/daybook-dev/daybook/internal/journal/domain"
	shared "github.com/daybook-dev/daybook/internal/shared/domain"
)

// GetDayQuery fetches one day bucket. An empty key means the active day.
type GetDayQuery struct {
	Key shared.DayKey
}

// DayView is a read-only view of a day bucket.
type DayView struct {
	Summary DaySummary
	Bucket  *domain.Bucket
}

// GetDayHandler resolves a day view.
type GetDayHandler struct {
	session *application.Session
}

// NewGetDayHandler creates a new GetDayHandler.
func NewGetDayHandler(session *application.Session) *GetDayHandler {
	return &GetDayHandler{session: session}
}

// Handle returns the requested day.
func (h *GetDayHandler) Handle(_ context.Context, query GetDayQuery) (*DayView, error) {
	state := h.session.State()
	key := query.Key
	if key == "" {
		key = state.ActiveDayKey()
	}

	bucket, err := state.Bucket(key)
	if err != nil {
		return nil, err
	}

	today := h.session.Today()
	return &DayView{
		Summary: DaySummary{
			Key:        key,
			Active:     key == state.ActiveDayKey(),
			Live:       key == today,
			ArchivedAt: bucket.ArchivedAt,
			SourceDay:  bucket.SourceDay,
			Notes:      len(bucket.Notes),
			Tasks:      len(bucket.Tasks),
		},
		Bucket: bucket,
	}, nil
}

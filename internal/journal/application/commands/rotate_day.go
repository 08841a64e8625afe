package commands

import (
	"context"

	"github.com/daybook-dev/daybook/internal/journal/application"
	"github.com/daybook-dev/daybook/internal/journal/domain"
	shared "github.com/daybook-dev/daybook/internal/shared/domain"
)

// RotateDayCommand archives today's bucket and starts the day fresh.
type RotateDayCommand struct{}

// RotateDayHandler performs the rotation.
type RotateDayHandler struct {
	session *application.Session
}

// NewRotateDayHandler creates a new RotateDayHandler.
func NewRotateDayHandler(session *application.Session) *RotateDayHandler {
	return &RotateDayHandler{session: session}
}

// Handle executes the rotation and returns the minted archive key.
func (h *RotateDayHandler) Handle(ctx context.Context, _ RotateDayCommand) (shared.DayKey, error) {
	today := h.session.Today()
	archiveKey, err := h.session.State().Rotate(today, h.session.Now())
	if err != nil {
		return "", err
	}

	h.session.Publish(ctx, domain.NewDayRotated(today, archiveKey))
	h.session.MarkDirty()
	return archiveKey, nil
}

package commands

import (
	"context"

	"github.com/daybook-dev/daybook/internal/journal/application"
	shared "github.com/daybook-dev/daybook/internal/shared/domain"
)

// OpenDayCommand switches the active day being viewed.
type OpenDayCommand struct {
	Key shared.DayKey
}

// OpenDayHandler switches views. Opening any key other than today puts the
// session in read-only mode until today is opened again.
type OpenDayHandler struct {
	session *application.Session
}

// NewOpenDayHandler creates a new OpenDayHandler.
func NewOpenDayHandler(session *application.Session) *OpenDayHandler {
	return &OpenDayHandler{session: session}
}

// Handle executes the switch.
func (h *OpenDayHandler) Handle(_ context.Context, cmd OpenDayCommand) error {
	if err := h.session.State().Open(cmd.Key, h.session.Today()); err != nil {
		return err
	}
	h.session.MarkDirty()
	return nil
}

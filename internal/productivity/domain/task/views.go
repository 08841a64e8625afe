package task

import (
	"strings"

	"github.com/daybook-dev/daybook/internal/shared/domain"
)

// View names a time-based task filter.
type View string

const (
	ViewAll     View = "all"
	ViewToday   View = "today"
	ViewOverdue View = "overdue"
	ViewWeek    View = "week"
	ViewNoDate  View = "nodate"
)

// ParseView normalizes a view name. Unknown names fall through to a
// pass-through view that behaves like all.
func ParseView(raw string) View {
	return View(strings.ToLower(strings.TrimSpace(raw)))
}

// IsOverdue reports an unfinished task whose due date lies before today.
// Day keys are zero-padded ISO dates, so string comparison is chronological.
func (t *Task) IsOverdue(today domain.DayKey) bool {
	return !t.dueDate.IsZero() && t.dueDate < today && !t.done
}

// Matches reports whether the task belongs to the named view relative to
// today's key.
func (t *Task) Matches(view View, today domain.DayKey) bool {
	switch view {
	case ViewToday:
		return t.doDate == today
	case ViewOverdue:
		return t.IsOverdue(today)
	case ViewWeek:
		if t.doDate.IsZero() {
			return false
		}
		return t.doDate >= today && t.doDate <= today.AddDays(7)
	case ViewNoDate:
		return t.doDate.IsZero() && t.dueDate.IsZero()
	default:
		// ViewAll and unknown views pass everything through.
		return true
	}
}

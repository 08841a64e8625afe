package task

import (
	"sort"

	"github.com/daybook-dev/daybook/internal/shared/domain"
)

// dateSentinel sorts tasks without a date after every dated task.
const dateSentinel = domain.DayKey("9999-12-31")

// Less orders tasks for display: overdue first, then by due date, do date,
// and priority level. Absent dates sort last via the sentinel key.
func Less(a, b *Task, today domain.DayKey) bool {
	aOver, bOver := rank(a.IsOverdue(today)), rank(b.IsOverdue(today))
	if aOver != bOver {
		return aOver < bOver
	}
	if ad, bd := orSentinel(a.dueDate), orSentinel(b.dueDate); ad != bd {
		return ad < bd
	}
	if ad, bd := orSentinel(a.doDate), orSentinel(b.doDate); ad != bd {
		return ad < bd
	}
	return a.priorityLevel < b.priorityLevel
}

// Sort orders tasks in place. The sort is stable, so exact ties keep their
// insertion order.
func Sort(tasks []*Task, today domain.DayKey) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return Less(tasks[i], tasks[j], today)
	})
}

func rank(overdue bool) int {
	if overdue {
		return 0
	}
	return 1
}

func orSentinel(key domain.DayKey) domain.DayKey {
	if key.IsZero() {
		return dateSentinel
	}
	return key
}

package task

import (
	"github.com/daybook-dev/daybook/internal/shared/domain"
	"github.com/google/uuid"
)

const aggregateType = "Task"

// Created is emitted when a task enters the live bucket.
type Created struct {
	domain.BaseEvent
	Title string
}

// NewCreated builds a Created event.
func NewCreated(taskID uuid.UUID, title string) Created {
	return Created{
		BaseEvent: domain.NewBaseEvent(taskID, aggregateType, "task.created"),
		Title:     title,
	}
}

// Completed is emitted when a non-recurring task is marked done.
type Completed struct {
	domain.BaseEvent
}

// NewCompleted builds a Completed event.
func NewCompleted(taskID uuid.UUID) Completed {
	return Completed{
		BaseEvent: domain.NewBaseEvent(taskID, aggregateType, "task.completed"),
	}
}

// Rescheduled is emitted when completing a recurring task advances its dates
// instead of leaving it done.
type Rescheduled struct {
	domain.BaseEvent
	DoDate  domain.DayKey
	DueDate domain.DayKey
}

// NewRescheduled builds a Rescheduled event.
func NewRescheduled(taskID uuid.UUID, doDate, dueDate domain.DayKey) Rescheduled {
	return Rescheduled{
		BaseEvent: domain.NewBaseEvent(taskID, aggregateType, "task.rescheduled"),
		DoDate:    doDate,
		DueDate:   dueDate,
	}
}

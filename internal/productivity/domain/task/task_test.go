package task_test

import (
	"testing"

	"github.com/daybook-dev/daybook/internal/productivity/domain/task"
	"github.com/daybook-dev/daybook/internal/shared/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("requires a title", func(t *testing.T) {
		_, err := task.New("   ", task.ModeQuick)
		assert.ErrorIs(t, err, task.ErrEmptyTitle)
	})

	t.Run("derives priority level from mode", func(t *testing.T) {
		tk, err := task.New("call the bank", task.ModeImmediate)
		require.NoError(t, err)
		assert.Equal(t, 1, tk.PriorityLevel())
		assert.False(t, tk.PriorityLocked())
	})

	t.Run("raises a created event", func(t *testing.T) {
		tk, err := task.New("buy milk", task.ModeErrand)
		require.NoError(t, err)
		require.Len(t, tk.DomainEvents(), 1)
		assert.Equal(t, "task.created", tk.DomainEvents()[0].RoutingKey())
	})
}

func TestSetMode_RespectsLockedLevel(t *testing.T) {
	tk, err := task.New("write report", task.ModeQuick)
	require.NoError(t, err)
	assert.Equal(t, 2, tk.PriorityLevel())

	tk.SetMode(task.ModeWaiting)
	assert.Equal(t, 5, tk.PriorityLevel(), "unlocked level follows the mode")

	require.NoError(t, tk.SetPriorityLevel(1))
	assert.True(t, tk.PriorityLocked())

	tk.SetMode(task.ModeRemember)
	assert.Equal(t, 1, tk.PriorityLevel(), "locked level survives mode changes")
}

func TestSetPriorityLevel_Bounds(t *testing.T) {
	tk, err := task.New("x", task.ModeQuick)
	require.NoError(t, err)

	assert.ErrorIs(t, tk.SetPriorityLevel(0), task.ErrInvalidLevel)
	assert.ErrorIs(t, tk.SetPriorityLevel(6), task.ErrInvalidLevel)
	assert.NoError(t, tk.SetPriorityLevel(5))
}

func TestDatesInverted(t *testing.T) {
	tk, err := task.New("x", task.ModeQuick)
	require.NoError(t, err)

	require.NoError(t, tk.SetDoDate("2024-03-20"))
	require.NoError(t, tk.SetDueDate("2024-03-15"))

	// Advisory only: the dates are kept as entered.
	assert.True(t, tk.DatesInverted())
	assert.Equal(t, domain.DayKey("2024-03-20"), tk.DoDate())
}

func TestSubtasks(t *testing.T) {
	t.Run("progress rounds to nearest percent", func(t *testing.T) {
		tk, err := task.New("project", task.ModeScheduled)
		require.NoError(t, err)

		a, err := tk.AddSubtask("one")
		require.NoError(t, err)
		_, err = tk.AddSubtask("two")
		require.NoError(t, err)
		_, err = tk.AddSubtask("three")
		require.NoError(t, err)

		assert.Equal(t, 0, tk.Progress())

		require.NoError(t, tk.ToggleSubtask(a.ID))
		assert.Equal(t, 33, tk.Progress())
	})

	t.Run("full progress auto-completes the task", func(t *testing.T) {
		tk, err := task.New("project", task.ModeScheduled)
		require.NoError(t, err)
		a, err := tk.AddSubtask("one")
		require.NoError(t, err)
		b, err := tk.AddSubtask("two")
		require.NoError(t, err)

		require.NoError(t, tk.ToggleSubtask(a.ID))
		assert.False(t, tk.Done())

		require.NoError(t, tk.ToggleSubtask(b.ID))
		assert.True(t, tk.Done())
	})

	t.Run("full progress on a recurring task reschedules it", func(t *testing.T) {
		tk, err := task.New("weekly review", task.ModeScheduled)
		require.NoError(t, err)
		require.NoError(t, tk.SetDoDate("2024-03-01"))
		require.NoError(t, tk.SetRecurrence(task.Recurrence{Type: task.RecurrenceWeekly, Interval: 1}))

		st, err := tk.AddSubtask("only step")
		require.NoError(t, err)
		require.NoError(t, tk.ToggleSubtask(st.ID))

		assert.False(t, tk.Done())
		assert.Equal(t, domain.DayKey("2024-03-08"), tk.DoDate())
	})

	t.Run("unknown subtask id", func(t *testing.T) {
		tk, err := task.New("x", task.ModeQuick)
		require.NoError(t, err)
		assert.ErrorIs(t, tk.ToggleSubtask(uuid.New()), task.ErrSubtaskNotFound)
		assert.ErrorIs(t, tk.RemoveSubtask(uuid.New()), task.ErrSubtaskNotFound)
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	tk, err := task.New("call dentist urgent", task.ModeImmediate)
	require.NoError(t, err)
	tk.SetDetails("ask about friday")
	require.NoError(t, tk.SetDoDate("2024-03-11"))
	require.NoError(t, tk.SetDueDate("2024-03-12"))
	require.NoError(t, tk.SetRecurrence(task.Recurrence{Type: task.RecurrenceMonthly, Interval: 1}))
	_, err = tk.AddSubtask("find number")
	require.NoError(t, err)
	tk.SetScore(90, task.TierP1)

	restored, err := task.FromSnapshot(tk.Snapshot())
	require.NoError(t, err)

	assert.Equal(t, tk.ID(), restored.ID())
	assert.Equal(t, tk.Title(), restored.Title())
	assert.Equal(t, tk.Details(), restored.Details())
	assert.Equal(t, tk.Mode(), restored.Mode())
	assert.Equal(t, tk.DoDate(), restored.DoDate())
	assert.Equal(t, tk.DueDate(), restored.DueDate())
	assert.Equal(t, tk.Recurrence(), restored.Recurrence())
	assert.Equal(t, tk.Score(), restored.Score())
	assert.Equal(t, tk.Tier(), restored.Tier())
	assert.Len(t, restored.Subtasks(), 1)
	assert.Empty(t, restored.DomainEvents(), "rehydration must not raise events")
}

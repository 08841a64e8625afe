package task_test

import (
	"testing"

	"github.com/daybook-dev/daybook/internal/productivity/domain/task"
	"github.com/daybook-dev/daybook/internal/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titled(t *testing.T, title string, doDate, dueDate domain.DayKey, level int) *task.Task {
	t.Helper()
	tk, err := task.New(title, task.ModeQuick)
	require.NoError(t, err)
	require.NoError(t, tk.SetDoDate(doDate))
	require.NoError(t, tk.SetDueDate(dueDate))
	require.NoError(t, tk.SetPriorityLevel(level))
	return tk
}

func titles(tasks []*task.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, tk := range tasks {
		out = append(out, tk.Title())
	}
	return out
}

func TestSort(t *testing.T) {
	t.Run("overdue always sorts first", func(t *testing.T) {
		// The overdue task has the worst due date, do date, and priority
		// in the set; overdue rank still wins.
		tasks := []*task.Task{
			titled(t, "future-p1", "2024-03-11", "2024-03-12", 1),
			titled(t, "overdue-p5", "", "2024-03-01", 5),
			titled(t, "nodate-p1", "", "", 1),
		}

		task.Sort(tasks, today)

		assert.Equal(t, []string{"overdue-p5", "future-p1", "nodate-p1"}, titles(tasks))
	})

	t.Run("due date before do date before priority", func(t *testing.T) {
		tasks := []*task.Task{
			titled(t, "later-due", "", "2024-03-20", 1),
			titled(t, "earlier-due", "", "2024-03-15", 5),
			titled(t, "same-due-early-do", "2024-03-11", "2024-03-20", 5),
		}

		task.Sort(tasks, today)

		assert.Equal(t, []string{"earlier-due", "same-due-early-do", "later-due"}, titles(tasks))
	})

	t.Run("absent dates sort after dated tasks", func(t *testing.T) {
		tasks := []*task.Task{
			titled(t, "undated", "", "", 1),
			titled(t, "dated", "", "2024-03-30", 5),
		}

		task.Sort(tasks, today)

		assert.Equal(t, []string{"dated", "undated"}, titles(tasks))
	})

	t.Run("priority breaks full date ties", func(t *testing.T) {
		tasks := []*task.Task{
			titled(t, "p3", "2024-03-12", "2024-03-15", 3),
			titled(t, "p1", "2024-03-12", "2024-03-15", 1),
		}

		task.Sort(tasks, today)

		assert.Equal(t, []string{"p1", "p3"}, titles(tasks))
	})

	t.Run("stable on exact ties", func(t *testing.T) {
		tasks := []*task.Task{
			titled(t, "first", "2024-03-12", "2024-03-15", 2),
			titled(t, "second", "2024-03-12", "2024-03-15", 2),
			titled(t, "third", "2024-03-12", "2024-03-15", 2),
		}

		task.Sort(tasks, today)

		assert.Equal(t, []string{"first", "second", "third"}, titles(tasks))
	})
}

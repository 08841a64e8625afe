package queries_test

import (
	"context"
	"testing"
	"time"

	journal "github.com/daybook-dev/daybook/internal/journal/domain"
	"github.com/daybook-dev/daybook/internal/productivity/application/commands"
	"github.com/daybook-dev/daybook/internal/productivity/application/queries"
	"github.com/daybook-dev/daybook/internal/productivity/application/services"
	"github.com/daybook-dev/daybook/internal/productivity/domain/task"
	shared "github.com/daybook-dev/daybook/internal/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 10, 13, 30, 0, 0, time.UTC)

const today = shared.DayKey("2024-03-10")

type fakeJournal struct {
	bucket *journal.Bucket
}

func (j *fakeJournal) Today() shared.DayKey { return today }

func (j *fakeJournal) MutableBucket() (*journal.Bucket, error) { return j.bucket, nil }

func (j *fakeJournal) ActiveBucket() *journal.Bucket { return j.bucket }

func (j *fakeJournal) MarkDirty() {}

func (j *fakeJournal) Publish(context.Context, shared.DomainEvent) {}

func (j *fakeJournal) PublishAll(_ context.Context, aggregate shared.AggregateRoot) {
	aggregate.ClearDomainEvents()
}

func seedJournal(t *testing.T) *fakeJournal {
	t.Helper()
	j := &fakeJournal{bucket: journal.NewBucket()}
	engine := services.NewPriorityEngine(
		services.DefaultPriorityEngineConfig(),
		func() time.Time { return fixedNow },
	)
	add := commands.NewAddTaskHandler(j, engine)

	seed := []commands.AddTaskCommand{
		{Title: "overdue invoice", DueDate: "2024-03-08"},
		{Title: "due next week", DueDate: "2024-03-14"},
		{Title: "today's errand", DoDate: "2024-03-10"},
		{Title: "floating idea"},
	}
	for _, cmd := range seed {
		_, err := add.Handle(context.Background(), cmd)
		require.NoError(t, err)
	}
	return j
}

func titles(rows []queries.TaskRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Title
	}
	return out
}

func TestListTasksHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("default view lists everything in display order", func(t *testing.T) {
		j := seedJournal(t)
		rows, err := queries.NewListTasksHandler(j).Handle(ctx, queries.ListTasksQuery{})
		require.NoError(t, err)

		assert.Equal(t, []string{
			"overdue invoice",
			"due next week",
			"today's errand",
			"floating idea",
		}, titles(rows))
		assert.True(t, rows[0].Overdue)
	})

	t.Run("today view", func(t *testing.T) {
		j := seedJournal(t)
		rows, err := queries.NewListTasksHandler(j).Handle(ctx, queries.ListTasksQuery{View: task.ViewToday})
		require.NoError(t, err)
		assert.Equal(t, []string{"today's errand"}, titles(rows))
	})

	t.Run("overdue view", func(t *testing.T) {
		j := seedJournal(t)
		rows, err := queries.NewListTasksHandler(j).Handle(ctx, queries.ListTasksQuery{View: task.ViewOverdue})
		require.NoError(t, err)
		assert.Equal(t, []string{"overdue invoice"}, titles(rows))
	})

	t.Run("nodate view", func(t *testing.T) {
		j := seedJournal(t)
		rows, err := queries.NewListTasksHandler(j).Handle(ctx, queries.ListTasksQuery{View: task.ViewNoDate})
		require.NoError(t, err)
		assert.Equal(t, []string{"floating idea"}, titles(rows))
	})

	t.Run("unknown view passes everything through", func(t *testing.T) {
		j := seedJournal(t)
		rows, err := queries.NewListTasksHandler(j).Handle(ctx, queries.ListTasksQuery{
			View: task.ParseView("someday-maybe"),
		})
		require.NoError(t, err)
		assert.Len(t, rows, 4)
	})
}

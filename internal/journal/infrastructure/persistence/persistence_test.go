package persistence_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/daybook-dev/daybook/internal/journal/domain"
	"github.com/daybook-dev/daybook/internal/journal/infrastructure/persistence"
	"github.com/daybook-dev/daybook/internal/productivity/domain/task"
	shared "github.com/daybook-dev/daybook/internal/shared/domain"
	sharedpersistence "github.com/daybook-dev/daybook/internal/shared/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const today = shared.DayKey("2024-03-10")

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sharedpersistence.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "daybook.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteStateRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	repo, err := persistence.NewSQLiteStateRepository(ctx, db)
	require.NoError(t, err)

	_, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	state := domain.NewState(today)
	bucket, err := state.MutableBucket(today)
	require.NoError(t, err)

	note, err := domain.NewNote("remember this", "with some text")
	require.NoError(t, err)
	note.AttachAudio(domain.BlobRef{ID: uuid.New(), Mime: "audio/webm"})
	bucket.Notes = append(bucket.Notes, note)

	tk, err := task.New("urgent thing", task.ModeImmediate)
	require.NoError(t, err)
	require.NoError(t, tk.SetDueDate("2024-03-12"))
	require.NoError(t, tk.SetRecurrence(task.Recurrence{Type: task.RecurrenceWeekly, Interval: 2}))
	_, err = tk.AddSubtask("first step")
	require.NoError(t, err)
	bucket.Tasks = append(bucket.Tasks, tk)

	_, err = state.Rotate(today, time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, state))

	loaded, found, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, today, loaded.ActiveDayKey())
	assert.ElementsMatch(t, state.Keys(), loaded.Keys())

	archived, err := loaded.Bucket("2024-03-10-archive-1")
	require.NoError(t, err)
	require.Len(t, archived.Notes, 1)
	require.Len(t, archived.Tasks, 1)
	assert.Equal(t, "remember this", archived.Notes[0].Title())
	require.NotNil(t, archived.Notes[0].Audio())
	assert.Equal(t, note.Audio().ID, archived.Notes[0].Audio().ID)
	assert.NotNil(t, archived.ArchivedAt)
	assert.Equal(t, today, archived.SourceDay)

	got := archived.Tasks[0]
	assert.Equal(t, tk.ID(), got.ID())
	assert.Equal(t, task.ModeImmediate, got.Mode())
	assert.Equal(t, shared.DayKey("2024-03-12"), got.DueDate())
	assert.Equal(t, task.RecurrenceWeekly, got.Recurrence().Type)
	require.Len(t, got.Subtasks(), 1)
	assert.Equal(t, "first step", got.Subtasks()[0].Title)
}

func TestSQLiteStateRepository_MigratesVersionZero(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	repo, err := persistence.NewSQLiteStateRepository(ctx, db)
	require.NoError(t, err)

	legacy := `{
		"version": 0,
		"activeDayKey": "2024-03-10",
		"days": {
			"2024-03-10": {
				"notes": [],
				"tasks": [
					{"id": "11111111-1111-1111-1111-111111111111", "title": "old high", "priority": "HIGH",
					 "createdAt": "2024-03-01T10:00:00Z", "updatedAt": "2024-03-01T10:00:00Z"},
					{"id": "22222222-2222-2222-2222-222222222222", "title": "old medium", "priority": "MEDIUM",
					 "createdAt": "2024-03-01T10:00:00Z", "updatedAt": "2024-03-01T10:00:00Z"},
					{"id": "33333333-3333-3333-3333-333333333333", "title": "old low", "priority": "LOW",
					 "createdAt": "2024-03-01T10:00:00Z", "updatedAt": "2024-03-01T10:00:00Z"},
					{"id": "44444444-4444-4444-4444-444444444444", "title": "out of range", "priorityLevel": 9,
					 "createdAt": "2024-03-01T10:00:00Z", "updatedAt": "2024-03-01T10:00:00Z"}
				]
			}
		}
	}`
	_, err = db.ExecContext(ctx,
		`INSERT INTO state (id, payload, updated_at) VALUES (1, ?, ?)`, legacy, time.Now().UTC())
	require.NoError(t, err)

	state, found, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)

	bucket, err := state.Bucket(today)
	require.NoError(t, err)
	require.Len(t, bucket.Tasks, 4)

	byTitle := map[string]*task.Task{}
	for _, tk := range bucket.Tasks {
		byTitle[tk.Title()] = tk
	}

	assert.Equal(t, task.ModeImmediate, byTitle["old high"].Mode())
	assert.Equal(t, 1, byTitle["old high"].PriorityLevel())
	assert.Equal(t, task.ModeQuick, byTitle["old medium"].Mode())
	assert.Equal(t, 3, byTitle["old medium"].PriorityLevel())
	assert.Equal(t, task.ModeRemember, byTitle["old low"].Mode())
	assert.Equal(t, 4, byTitle["old low"].PriorityLevel())
	assert.Equal(t, 5, byTitle["out of range"].PriorityLevel())
}

func TestSQLiteStateRepository_MalformedPayload(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	repo, err := persistence.NewSQLiteStateRepository(ctx, db)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO state (id, payload, updated_at) VALUES (1, ?, ?)`, "{not json", time.Now().UTC())
	require.NoError(t, err)

	_, _, err = repo.Load(ctx)
	assert.Error(t, err)
}

func TestSQLiteBlobStore(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	store, err := persistence.NewSQLiteBlobStore(ctx, db)
	require.NoError(t, err)

	id := uuid.New()
	require.NoError(t, store.Put(ctx, id, "audio/webm", []byte{1, 2, 3}))

	mime, data, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "audio/webm", mime)
	assert.Equal(t, []byte{1, 2, 3}, data)

	require.NoError(t, store.Delete(ctx, id))
	_, _, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)

	// deleting again is a no-op
	assert.NoError(t, store.Delete(ctx, id))
}

// Package persistence stores the journal state as a single versioned JSON
// document in SQLite, plus a blobs table for audio and attachments.
package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/daybook-dev/daybook/internal/journal/domain"
	"github.com/daybook-dev/daybook/internal/productivity/domain/task"
	shared "github.com/daybook-dev/daybook/internal/shared/domain"
)

// currentVersion is stamped on every save. Version 0 documents predate the
// mode/level priority model and are migrated on load.
const currentVersion = 1

// SQLiteStateRepository persists the whole state document in one row. The
// state is small (one user's days) and always rewritten as a unit, which
// keeps saves atomic without per-entity tables.
type SQLiteStateRepository struct {
	db *sql.DB
}

// NewSQLiteStateRepository creates the repository and its schema.
func NewSQLiteStateRepository(ctx context.Context, db *sql.DB) (*SQLiteStateRepository, error) {
	const schema = `
CREATE TABLE IF NOT EXISTS state (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	payload TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to create state table: %w", err)
	}
	return &SQLiteStateRepository{db: db}, nil
}

type rootDocument struct {
	Version      int                  `json:"version"`
	ActiveDayKey shared.DayKey        `json:"activeDayKey"`
	Days         map[string]bucketDoc `json:"days"`
}

type bucketDoc struct {
	Notes      []domain.NoteSnapshot `json:"notes"`
	Tasks      []taskDoc             `json:"tasks"`
	ArchivedAt *time.Time            `json:"archivedAt,omitempty"`
	SourceDay  shared.DayKey         `json:"sourceDay,omitempty"`
}

// taskDoc carries the legacy priority string alongside the current snapshot
// so version 0 documents decode without a second pass.
type taskDoc struct {
	task.Snapshot
	LegacyPriority string `json:"priority,omitempty"`
}

// Load reads and migrates the persisted state. found is false on first run;
// a document that cannot be decoded or migrated surfaces as an error so the
// session can fall back to a fresh state.
func (r *SQLiteStateRepository) Load(ctx context.Context) (*domain.State, bool, error) {
	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE id = 1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read state: %w", err)
	}

	var doc rootDocument
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, false, fmt.Errorf("failed to decode state document: %w", err)
	}
	if doc.Version > currentVersion {
		return nil, false, fmt.Errorf("state document version %d is newer than supported", doc.Version)
	}

	days := make(map[shared.DayKey]*domain.Bucket, len(doc.Days))
	for key, bd := range doc.Days {
		bucket, err := rehydrateBucket(bd, doc.Version)
		if err != nil {
			return nil, false, fmt.Errorf("day %s: %w", key, err)
		}
		days[shared.DayKey(key)] = bucket
	}
	return domain.RehydrateState(doc.ActiveDayKey, days), true, nil
}

// Save rewrites the single state row.
func (r *SQLiteStateRepository) Save(ctx context.Context, state *domain.State) error {
	doc := rootDocument{
		Version:      currentVersion,
		ActiveDayKey: state.ActiveDayKey(),
		Days:         make(map[string]bucketDoc, len(state.Days())),
	}
	for key, bucket := range state.Days() {
		doc.Days[string(key)] = snapshotBucket(bucket)
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode state document: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO state (id, payload, updated_at) VALUES (1, ?, ?)
ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}

func snapshotBucket(bucket *domain.Bucket) bucketDoc {
	bd := bucketDoc{
		Notes:      make([]domain.NoteSnapshot, 0, len(bucket.Notes)),
		Tasks:      make([]taskDoc, 0, len(bucket.Tasks)),
		ArchivedAt: bucket.ArchivedAt,
		SourceDay:  bucket.SourceDay,
	}
	for _, n := range bucket.Notes {
		bd.Notes = append(bd.Notes, n.Snapshot())
	}
	for _, t := range bucket.Tasks {
		bd.Tasks = append(bd.Tasks, taskDoc{Snapshot: t.Snapshot()})
	}
	return bd
}

func rehydrateBucket(bd bucketDoc, version int) (*domain.Bucket, error) {
	bucket := domain.NewBucket()
	bucket.ArchivedAt = bd.ArchivedAt
	bucket.SourceDay = bd.SourceDay

	for _, ns := range bd.Notes {
		note, err := domain.NoteFromSnapshot(ns)
		if err != nil {
			return nil, fmt.Errorf("note %s: %w", ns.ID, err)
		}
		bucket.Notes = append(bucket.Notes, note)
	}
	for _, td := range bd.Tasks {
		snapshot := migrateTask(td, version)
		t, err := task.FromSnapshot(snapshot)
		if err != nil {
			return nil, fmt.Errorf("task %s: %w", td.ID, err)
		}
		bucket.Tasks = append(bucket.Tasks, t)
	}
	return bucket, nil
}

// migrateTask lifts a version 0 task onto the mode/level model and coerces
// an out-of-range level back into bounds. Normalization of old data happens
// only here; the domain never sees a legacy shape.
func migrateTask(td taskDoc, version int) task.Snapshot {
	s := td.Snapshot

	if version == 0 {
		switch td.LegacyPriority {
		case "LOW":
			s.Mode, s.PriorityLevel = task.ModeRemember, 4
		case "MEDIUM":
			s.Mode, s.PriorityLevel = task.ModeQuick, 3
		case "HIGH":
			s.Mode, s.PriorityLevel = task.ModeImmediate, 1
		}
	}

	if s.Mode == "" {
		s.Mode = task.ModeQuick
	}
	if s.PriorityLevel < 1 {
		s.PriorityLevel = 1
	} else if s.PriorityLevel > 5 {
		s.PriorityLevel = 5
	}
	if s.Source == "" {
		s.Source = task.SourceManual
	}
	if s.Recurrence.Type == "" {
		s.Recurrence = task.Recurrence{Type: task.RecurrenceNone, Interval: 1}
	}
	return s
}

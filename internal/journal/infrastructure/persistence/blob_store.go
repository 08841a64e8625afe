package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/daybook-dev/daybook/internal/journal/domain"
	"github.com/google/uuid"
)

// SQLiteBlobStore keeps audio recordings and attachments out of the state
// document. Blobs are deleted by explicit cascade from the note handlers;
// nothing here enforces the link, so orphans are possible and harmless.
type SQLiteBlobStore struct {
	db *sql.DB
}

// NewSQLiteBlobStore creates the store and its schema.
func NewSQLiteBlobStore(ctx context.Context, db *sql.DB) (*SQLiteBlobStore, error) {
	const schema = `
CREATE TABLE IF NOT EXISTS blobs (
	id TEXT PRIMARY KEY,
	mime TEXT NOT NULL,
	data BLOB NOT NULL,
	created_at TIMESTAMP NOT NULL
)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to create blobs table: %w", err)
	}
	return &SQLiteBlobStore{db: db}, nil
}

// Put stores or replaces a blob.
func (s *SQLiteBlobStore) Put(ctx context.Context, id uuid.UUID, mime string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO blobs (id, mime, data, created_at) VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET mime = excluded.mime, data = excluded.data`,
		id.String(), mime, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to store blob %s: %w", id, err)
	}
	return nil
}

// Get fetches a blob.
func (s *SQLiteBlobStore) Get(ctx context.Context, id uuid.UUID) (string, []byte, error) {
	var mime string
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT mime, data FROM blobs WHERE id = ?`, id.String()).Scan(&mime, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil, domain.ErrBlobNotFound
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to read blob %s: %w", id, err)
	}
	return mime, data, nil
}

// Delete removes a blob. Deleting an absent blob is not an error.
func (s *SQLiteBlobStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM blobs WHERE id = ?`, id.String()); err != nil {
		return fmt.Errorf("failed to delete blob %s: %w", id, err)
	}
	return nil
}

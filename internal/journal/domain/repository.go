package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrBlobNotFound = errors.New("blob not found")
	// ErrCaptureDenied indicates the capture device refused permission.
	// It aborts only the capture action; prior state is untouched.
	ErrCaptureDenied = errors.New("audio capture permission denied")
)

// StateRepository persists the root state. Load reports found=false on first
// run; malformed persisted state is the repository's problem to detect and
// must surface as an error so the caller can fall back to a fresh state.
type StateRepository interface {
	Load(ctx context.Context) (*State, bool, error)
	Save(ctx context.Context, state *State) error
}

// BlobStore holds opaque audio and attachment blobs, keyed by id,
// independent of the state repository. There is no transactional link to the
// owning note; cascade deletes are manual and orphans are possible.
type BlobStore interface {
	Put(ctx context.Context, id uuid.UUID, mime string, data []byte) error
	Get(ctx context.Context, id uuid.UUID) (mime string, data []byte, err error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Recording is a finished audio capture.
type Recording struct {
	Mime string
	Data []byte
}

// Recorder abstracts the capture device. Start may block awaiting
// permission; denial surfaces as ErrCaptureDenied from Start or Stop.
type Recorder interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) (Recording, error)
}

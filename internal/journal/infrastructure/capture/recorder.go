// Package capture implements the audio capture port. The CLI has no
// microphone access of its own, so a capture is an existing audio file
// handed over at the moment the note is taken.
package capture

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/daybook-dev/daybook/internal/journal/domain"
)

var audioMimes = map[string]string{
	".webm": "audio/webm",
	".ogg":  "audio/ogg",
	".opus": "audio/opus",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".flac": "audio/flac",
}

// FileRecorder reads a finished recording from disk. Start verifies access so
// a permission problem aborts the capture before any state changes; Stop
// slurps the file.
type FileRecorder struct {
	path string
}

// NewFileRecorder creates a recorder for the given audio file.
func NewFileRecorder(path string) *FileRecorder {
	return &FileRecorder{path: path}
}

// Start checks that the recording is readable. A permission error maps to
// ErrCaptureDenied, the same refusal a capture device would give.
func (r *FileRecorder) Start(_ context.Context) error {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return domain.ErrCaptureDenied
		}
		return fmt.Errorf("failed to open recording: %w", err)
	}
	return f.Close()
}

// Stop reads the recording and derives its mime type from the extension.
func (r *FileRecorder) Stop(_ context.Context) (domain.Recording, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return domain.Recording{}, domain.ErrCaptureDenied
		}
		return domain.Recording{}, fmt.Errorf("failed to read recording: %w", err)
	}
	return domain.Recording{Mime: MimeForPath(r.path), Data: data}, nil
}

// MimeForPath maps an audio file extension to its mime type.
func MimeForPath(path string) string {
	if mime, ok := audioMimes[strings.ToLower(filepath.Ext(path))]; ok {
		return mime
	}
	return "application/octet-stream"
}

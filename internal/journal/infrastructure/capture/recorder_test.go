package capture_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/daybook-dev/daybook/internal/journal/domain"
	"github.com/daybook-dev/daybook/internal/journal/infrastructure/capture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRecorder(t *testing.T) {
	ctx := context.Background()

	t.Run("reads the recording with its mime type", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "memo.webm")
		require.NoError(t, os.WriteFile(path, []byte{0xde, 0xad}, 0o644))

		r := capture.NewFileRecorder(path)
		require.NoError(t, r.Start(ctx))

		rec, err := r.Stop(ctx)
		require.NoError(t, err)
		assert.Equal(t, "audio/webm", rec.Mime)
		assert.Equal(t, []byte{0xde, 0xad}, rec.Data)
	})

	t.Run("unreadable recording maps to a capture denial", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("permission bits do not bind for root")
		}
		path := filepath.Join(t.TempDir(), "memo.webm")
		require.NoError(t, os.WriteFile(path, []byte{1}, 0o000))

		r := capture.NewFileRecorder(path)
		assert.ErrorIs(t, r.Start(ctx), domain.ErrCaptureDenied)
	})

	t.Run("missing file is a plain error", func(t *testing.T) {
		r := capture.NewFileRecorder(filepath.Join(t.TempDir(), "nope.webm"))
		err := r.Start(ctx)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrCaptureDenied)
	})
}

func TestMimeForPath(t *testing.T) {
	assert.Equal(t, "audio/ogg", capture.MimeForPath("x.OGG"))
	assert.Equal(t, "audio/mpeg", capture.MimeForPath("/tmp/a.mp3"))
	assert.Equal(t, "application/octet-stream", capture.MimeForPath("notes.txt"))
}

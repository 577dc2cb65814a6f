package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
)

func TestIsTranscriptFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"meeting.vtt", true},
		{"/in/Weekly Sync.VTT", true},
		{"notes.txt", false},
		{"video.mp4", false},
		{".meeting.vtt", false},
		{"vtt", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := isTranscriptFile(tt.path); got != tt.want {
				t.Errorf("isTranscriptFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNew_MissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), nil, logger.Nop(), 1)
	assert.Error(t, err)
}

func TestStart_DispatchesTranscripts(t *testing.T) {
	dir := t.TempDir()
	seen := make(chan string, 4)
	handler := func(_ context.Context, path string) error {
		seen <- filepath.Base(path)
		return nil
	}

	w, err := newWatcher(dir, handler, logger.Nop(), 1, 10*time.Millisecond)
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "standup.vtt"), []byte("WEBVTT\n"), 0644))

	select {
	case name := <-seen:
		assert.Equal(t, "standup.vtt", name)
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}

	cancel()
	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
	assert.Empty(t, seen)
}

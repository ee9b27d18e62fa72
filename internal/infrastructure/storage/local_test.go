package storage

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixedStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := NewLocalStore(filepath.Join(t.TempDir(), "uploads"), zap.NewNop())
	require.NoError(t, err)
	s.now = func() time.Time { return time.Date(2024, 3, 5, 9, 30, 15, 0, time.UTC) }
	return s
}

func TestSaveWritesTimestampedFile(t *testing.T) {
	s := fixedStore(t)

	got, err := s.Save(strings.NewReader("audio-bytes"), "Standup.MP3")
	require.NoError(t, err)
	require.Equal(t, "meeting_20240305_093015.mp3", got.Filename)
	require.Equal(t, "mp3", got.Extension)
	require.Equal(t, int64(11), got.SizeBytes)
	require.Equal(t, "Standup.MP3", got.OriginalName)

	data, err := os.ReadFile(got.Path)
	require.NoError(t, err)
	require.Equal(t, "audio-bytes", string(data))
}

func TestSaveSameSecondGetsUniqueNames(t *testing.T) {
	s := fixedStore(t)
	suffixed := regexp.MustCompile(`^meeting_20240305_093015_[0-9a-f]{8}\.mp3$`)

	const n = 4
	names := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.Save(strings.NewReader("x"), "a.wav")
			if assert.NoError(t, err) {
				names <- got.Filename
			}
		}()
	}
	wg.Wait()
	close(names)

	seen := map[string]bool{}
	for name := range names {
		require.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
		if name != "meeting_20240305_093015.mp3" {
			require.Regexp(t, suffixed, name)
		}
	}
	require.Len(t, seen, n)
}

func TestRemove(t *testing.T) {
	s := fixedStore(t)
	got, err := s.Save(strings.NewReader("x"), "a.flac")
	require.NoError(t, err)

	s.Remove(got.Path)
	_, err = os.Stat(got.Path)
	require.True(t, errors.Is(err, os.ErrNotExist))

	// second removal is a no-op
	s.Remove(got.Path)
	s.Remove("")
}

func TestExtension(t *testing.T) {
	require.Equal(t, "mp3", Extension("a.b.MP3"))
	require.Equal(t, "", Extension("noext"))
	require.Equal(t, "", Extension("trailing."))
	require.Equal(t, "m4a", Extension(".m4a"))
}

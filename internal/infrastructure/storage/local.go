package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

const maxNameAttempts = 5

// LocalStore keeps uploads on local disk for the duration of one request
type LocalStore struct {
	dir    string
	now    func() time.Time
	logger *zap.Logger
}

// NewLocalStore creates the upload directory if needed and returns a store rooted at it
func NewLocalStore(dir string, logger *zap.Logger) (*LocalStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalStore{dir: dir, now: time.Now, logger: logger}, nil
}

// Dir returns the directory uploads are written to
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save streams r into a new meeting_<timestamp>.mp3 file. The file is created
// exclusively; when the name is taken a random suffix is appended.
func (s *LocalStore) Save(r io.Reader, originalName string) (*entities.UploadedAudio, error) {
	receivedAt := s.now()
	f, name, err := s.create(receivedAt)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, name)
	written, copyErr := io.Copy(f, r)
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		s.Remove(path)
		return nil, fmt.Errorf("failed to write upload: %w", errors.Join(copyErr, closeErr))
	}

	return &entities.UploadedAudio{
		OriginalName: originalName,
		Extension:    Extension(originalName),
		SizeBytes:    written,
		Filename:     name,
		Path:         path,
		ReceivedAt:   receivedAt,
	}, nil
}

func (s *LocalStore) create(ts time.Time) (*os.File, string, error) {
	stamp := ts.Format("20060102_150405")
	name := fmt.Sprintf("meeting_%s.mp3", stamp)

	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, name, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", fmt.Errorf("failed to create upload file: %w", err)
		}
		suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		name = fmt.Sprintf("meeting_%s_%s.mp3", stamp, suffix)
	}

	return nil, "", fmt.Errorf("failed to allocate a unique upload name for %s", stamp)
}

// Remove deletes a file the store handed out. Missing files are not an error;
// other failures are logged and swallowed.
func (s *LocalStore) Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("Failed to cleanup file", zap.String("path", path), zap.Error(err))
		return
	}
	s.logger.Debug("Cleaned up file", zap.String("path", filepath.Base(path)))
}

// Extension returns the lowercase extension after the last dot, without the dot
func Extension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx == -1 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

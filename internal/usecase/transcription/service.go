package transcription

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	pkgai "github.com/johnquangdev/meeting-summarizer/pkg/ai"
	pkgaudio "github.com/johnquangdev/meeting-summarizer/pkg/audio"
	"github.com/johnquangdev/meeting-summarizer/pkg/jobcontext"
)

// Recognizer converts a local audio file to text. Implemented by pkg/ai.AssemblyAIClient.
type Recognizer interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Service defines speech-to-text for normalized recordings
type Service interface {
	// Transcribe consumes the normalized file: it is removed before Transcribe returns.
	Transcribe(ctx context.Context, audio *entities.NormalizedAudio) (*entities.Transcript, error)
}

type transcriptionService struct {
	recognizer Recognizer
	window     time.Duration
	logger     *zap.Logger
}

// NewService constructs a new transcription service
func NewService(recognizer Recognizer, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &transcriptionService{
		recognizer: recognizer,
		window:     pkgaudio.DefaultCalibrationWindow,
		logger:     logger,
	}
}

func (s *transcriptionService) Transcribe(ctx context.Context, audio *entities.NormalizedAudio) (*entities.Transcript, error) {
	if audio == nil || audio.Path == "" {
		return nil, fmt.Errorf("normalized audio is required")
	}

	log := s.logger.With(
		zap.String("request_id", jobcontext.RequestID(ctx)),
		zap.String("file", filepath.Base(audio.Path)),
	)
	defer s.removeNormalized(log, audio.Path)

	analysis, err := pkgaudio.Analyze(audio.Path, s.window)
	if err != nil {
		return nil, fmt.Errorf("calibrate audio: %w", err)
	}

	log.Info("🎚️ Ambient noise calibrated",
		zap.Float64("ambient_rms", analysis.Profile.AmbientRMS),
		zap.Float64("energy_threshold", analysis.Profile.EnergyThreshold),
		zap.Duration("duration", analysis.Duration),
		zap.Int("voiced_frames", analysis.VoicedFrames),
	)

	if !analysis.HasSpeech() {
		log.Warn("No frame rose above the noise floor after calibration")
	}

	text, err := s.recognizer.Transcribe(ctx, audio.Path)
	if err != nil {
		var localErr *pkgai.LocalAudioError
		switch {
		case errors.Is(err, pkgai.ErrNoSpeech):
			return nil, fmt.Errorf("%w: %v", entities.ErrUnintelligibleAudio, err)
		case errors.As(err, &localErr):
			return nil, fmt.Errorf("read normalized audio: %w", err)
		}
		return nil, &entities.SpeechServiceError{Err: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, entities.ErrUnintelligibleAudio
	}

	transcript := &entities.Transcript{Text: text}
	log.Info("✅ Transcription successful", zap.Int("word_count", transcript.WordCount()))
	return transcript, nil
}

func (s *transcriptionService) removeNormalized(log *zap.Logger, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn("Failed to remove converted audio", zap.Error(err))
	}
}

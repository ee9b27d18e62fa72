package meeting

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/metrics"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/storage"
	aiuc "github.com/johnquangdev/meeting-summarizer/internal/usecase/ai"
	audiouc "github.com/johnquangdev/meeting-summarizer/internal/usecase/audio"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/transcription"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
	"github.com/johnquangdev/meeting-summarizer/pkg/jobcontext"
)

// Store persists uploads for the lifetime of a request
type Store interface {
	Save(r io.Reader, originalName string) (*entities.UploadedAudio, error)
	Remove(path string)
}

// Upload is one incoming recording
type Upload struct {
	Filename string
	Size     int64
	Body     io.Reader
}

// Result is what a completed run hands back to the caller
type Result struct {
	Transcript  string
	Summary     *entities.MeetingSummary
	Filename    string
	CompletedAt time.Time
	WordCount   int
	Degraded    bool
	Job         *entities.ProcessingJob
}

// Service defines the meeting processing pipeline
type Service interface {
	// Process validates, stores, normalizes, transcribes and summarizes one upload.
	// Every file the run creates is gone when Process returns.
	Process(ctx context.Context, upload Upload) (*Result, error)
	// Validate checks an upload's name and size without touching disk
	Validate(filename string, size int64) error
	SupportedFormats() []string
	MaxFileSizeMB() int64
	// ToAppError maps a Process error to its client-facing form
	ToAppError(err error, upload Upload) apperrors.AppError
}

type meetingService struct {
	cfg         config.UploadConfig
	store       Store
	normalizer  audiouc.Normalizer
	transcriber transcription.Service
	summarizer  aiuc.Summarizer
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewService constructs the pipeline. m may be nil.
func NewService(
	cfg config.UploadConfig,
	store Store,
	normalizer audiouc.Normalizer,
	transcriber transcription.Service,
	summarizer aiuc.Summarizer,
	m *metrics.Metrics,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &meetingService{
		cfg:         cfg,
		store:       store,
		normalizer:  normalizer,
		transcriber: transcriber,
		summarizer:  summarizer,
		metrics:     m,
		logger:      logger,
	}
}

func (s *meetingService) SupportedFormats() []string {
	return slices.Clone(s.cfg.AllowedExtensions)
}

func (s *meetingService) MaxFileSizeMB() int64 {
	return s.cfg.MaxSizeMB
}

func (s *meetingService) Validate(filename string, size int64) error {
	if filename == "" {
		return entities.ErrEmptyFilename
	}
	ext := storage.Extension(filename)
	if !slices.Contains(s.cfg.AllowedExtensions, ext) {
		return fmt.Errorf("%w: %q", entities.ErrUnsupportedExtension, ext)
	}
	if size > s.cfg.MaxUploadBytes() {
		return fmt.Errorf("%w: %d bytes", entities.ErrFileTooLarge, size)
	}
	return nil
}

func (s *meetingService) Process(ctx context.Context, upload Upload) (result *Result, err error) {
	job := entities.NewProcessingJob(jobcontext.RequestID(ctx))
	log := s.logger.With(zap.String("request_id", job.RequestID))
	format := storage.Extension(upload.Filename)

	var (
		uploaded  *entities.UploadedAudio
		converted string
	)

	defer func() {
		if uploaded != nil {
			s.store.Remove(uploaded.Path)
		}
		if converted != "" {
			s.store.Remove(converted)
		}

		if err != nil {
			job.Fail(err)
			s.metrics.ObserveRequest("error", format)
			log.Error("❌ Processing failed",
				zap.Any("states", job.History),
				zap.Duration("took", job.Duration()),
				zap.Error(err),
			)
			return
		}
		s.metrics.ObserveRequest("success", format)
		log.Info("✅ Processing completed",
			zap.Any("states", job.History),
			zap.Duration("took", job.Duration()),
		)
	}()

	if upload.Body == nil {
		err = entities.ErrNoAudioFile
		return nil, err
	}
	if err = s.Validate(upload.Filename, upload.Size); err != nil {
		return nil, err
	}
	if err = job.Advance(entities.StateValidated); err != nil {
		return nil, err
	}

	err = s.stage(ctx, StageStore, func(ctx context.Context) error {
		var serr error
		uploaded, serr = s.store.Save(upload.Body, upload.Filename)
		return serr
	})
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveUpload(uploaded.SizeBytes)
	log.Info("📥 File received",
		zap.String("filename", uploaded.Filename),
		zap.String("original_name", uploaded.OriginalName),
		zap.Float64("size_mb", uploaded.SizeMB()),
	)
	if err = job.Advance(entities.StateStored); err != nil {
		return nil, err
	}

	// the derived file may exist even when conversion fails
	converted = audiouc.ConvertedPath(uploaded.Path)

	var normalized *entities.NormalizedAudio
	err = s.stage(ctx, StageNormalize, func(ctx context.Context) error {
		var nerr error
		normalized, nerr = s.normalizer.Normalize(ctx, uploaded.Path)
		return nerr
	})
	if err != nil {
		return nil, err
	}
	if err = job.Advance(entities.StateNormalized); err != nil {
		return nil, err
	}

	var transcript *entities.Transcript
	err = s.stage(ctx, StageTranscribe, func(ctx context.Context) error {
		var terr error
		transcript, terr = s.transcriber.Transcribe(ctx, normalized)
		return terr
	})
	if err != nil {
		return nil, err
	}
	if err = job.Advance(entities.StateTranscribed); err != nil {
		return nil, err
	}

	var summary *entities.MeetingSummary
	err = s.stage(ctx, StageSummarize, func(ctx context.Context) error {
		summary = s.summarizer.Summarize(ctx, transcript.Text)
		if summary == nil {
			return errors.New("summarizer returned no summary")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if summary.Degraded {
		s.metrics.ObserveFallback()
	}
	if err = job.Advance(entities.StateSummarized); err != nil {
		return nil, err
	}

	if err = job.Advance(entities.StateCompleted); err != nil {
		return nil, err
	}

	return &Result{
		Transcript:  transcript.Text,
		Summary:     summary,
		Filename:    uploaded.Filename,
		CompletedAt: *job.EndedAt,
		WordCount:   transcript.WordCount(),
		Degraded:    summary.Degraded,
		Job:         job,
	}, nil
}

func (s *meetingService) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := jobcontext.Run(ctx, name, fn)
	s.metrics.ObserveStage(name, time.Since(start))
	if err != nil {
		return &StageError{Stage: name, Err: err}
	}
	return nil
}

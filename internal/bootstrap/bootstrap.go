package bootstrap

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/metrics"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/storage"
	aiuc "github.com/johnquangdev/meeting-summarizer/internal/usecase/ai"
	audiouc "github.com/johnquangdev/meeting-summarizer/internal/usecase/audio"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/transcription"
	pkgai "github.com/johnquangdev/meeting-summarizer/pkg/ai"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
	"github.com/johnquangdev/meeting-summarizer/pkg/executor"
)

// Pipeline is the fully wired processing stack shared by the server and the CLI
type Pipeline struct {
	Service   meeting.Service
	Generator aiuc.Generator
	Store     *storage.LocalStore
	Metrics   *metrics.Metrics
}

// NewGenerator builds the generative backend selected by cfg.Summary.Provider
func NewGenerator(ctx context.Context, cfg *config.Config) (aiuc.Generator, error) {
	switch cfg.Summary.Provider {
	case config.ProviderGroq:
		return pkgai.NewGroqClient(&cfg.Groq), nil
	case config.ProviderGemini, "":
		return pkgai.NewGeminiClient(ctx, &cfg.Gemini)
	default:
		return nil, fmt.Errorf("unknown summary provider %q", cfg.Summary.Provider)
	}
}

// NewPipeline wires storage, transcoder, speech and generative backends into the meeting service.
// reg may be nil to skip metric registration.
func NewPipeline(ctx context.Context, cfg *config.Config, reg prometheus.Registerer, logger *zap.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	store, err := storage.NewLocalStore(cfg.Upload.Dir, logger.Named("storage"))
	if err != nil {
		return nil, err
	}

	generator, err := NewGenerator(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s backend: %w", cfg.Summary.Provider, err)
	}

	var m *metrics.Metrics
	if reg != nil {
		m = metrics.New(reg)
	}

	normalizer := audiouc.New(cfg.FFmpeg, executor.New(), logger.Named("ffmpeg"))
	transcriber := transcription.NewService(pkgai.NewAssemblyAIClient(&cfg.AssemblyAI), logger.Named("transcription"))
	summarizer := aiuc.NewSummarizer(generator, logger.Named("summary"))

	svc := meeting.NewService(cfg.Upload, store, normalizer, transcriber, summarizer, m, logger.Named("pipeline"))

	return &Pipeline{
		Service:   svc,
		Generator: generator,
		Store:     store,
		Metrics:   m,
	}, nil
}

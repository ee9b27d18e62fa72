package audio

import (
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
	"github.com/johnquangdev/meeting-summarizer/pkg/executor"
)

const (
	defaultBinary  = "ffmpeg"
	defaultTimeout = 30 * time.Second

	targetSampleRate = 16000
	targetChannels   = 1
)

type implNormalizer struct {
	binary   string
	timeout  time.Duration
	executor executor.Executor
	logger   *zap.Logger
}

// New creates a new ffmpeg-backed Normalizer
func New(cfg config.FFmpegConfig, exec executor.Executor, logger *zap.Logger) Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &implNormalizer{
		binary:   cfg.Path,
		timeout:  timeout,
		executor: exec,
		logger:   logger,
	}
}

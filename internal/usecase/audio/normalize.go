package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/pkg/executor"
	"github.com/johnquangdev/meeting-summarizer/pkg/jobcontext"
)

// ConvertedPath returns the derived WAV path for a source file
func ConvertedPath(srcPath string) string {
	return strings.TrimSuffix(srcPath, filepath.Ext(srcPath)) + "_converted.wav"
}

func (n *implNormalizer) Normalize(ctx context.Context, srcPath string) (*entities.NormalizedAudio, error) {
	out := ConvertedPath(srcPath)
	log := n.logger.With(
		zap.String("request_id", jobcontext.RequestID(ctx)),
		zap.String("source", filepath.Base(srcPath)),
	)

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	args := []string{
		"-i", srcPath,
		"-ac", strconv.Itoa(targetChannels),
		"-ar", strconv.Itoa(targetSampleRate),
		"-y", out,
	}

	log.Info("Converting audio to WAV", zap.String("output", filepath.Base(out)))

	err := n.run(ctx, log, args)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s: %v", entities.ErrConversionTimeout, n.timeout, err)
		}
		return nil, fmt.Errorf("FFmpeg conversion failed: %w", err)
	}

	if _, err := os.Stat(out); err != nil {
		return nil, fmt.Errorf("%w: %s", entities.ErrConvertedMissing, filepath.Base(out))
	}

	log.Info("✅ Audio conversion successful")
	return &entities.NormalizedAudio{
		Path:       out,
		SampleRate: targetSampleRate,
		Channels:   targetChannels,
	}, nil
}

// run tries the configured binary and falls back to ffmpeg from PATH only when it could not be started
func (n *implNormalizer) run(ctx context.Context, log *zap.Logger, args []string) error {
	if n.binary == "" || n.binary == defaultBinary {
		_, err := n.executor.Execute(ctx, defaultBinary, args...)
		return err
	}

	_, err := n.executor.Execute(ctx, n.binary, args...)
	if err == nil || !executor.IsStartError(err) {
		return err
	}

	log.Warn("Configured ffmpeg could not be started, falling back to PATH",
		zap.String("configured", n.binary),
		zap.Error(err),
	)
	_, err = n.executor.Execute(ctx, defaultBinary, args...)
	return err
}

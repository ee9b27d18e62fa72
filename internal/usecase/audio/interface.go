package audio

import (
	"context"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// Normalizer converts an uploaded recording into mono 16 kHz WAV
type Normalizer interface {
	// Normalize writes <src-without-ext>_converted.wav next to src.
	// The caller owns the returned file, including after a failure.
	Normalize(ctx context.Context, srcPath string) (*entities.NormalizedAudio, error)
}

package meeting

import (
	stdErrors "errors"
	"fmt"

	apperrors "github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// Stage names as they appear in StageError, logs and metrics
const (
	StageStore      = "store"
	StageNormalize  = "normalize"
	StageTranscribe = "transcribe"
	StageSummarize  = "summarize"
)

// StageError records which pipeline stage failed
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func (s *meetingService) ToAppError(err error, upload Upload) apperrors.AppError {
	var appErr apperrors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stdErrors.Is(err, entities.ErrNoAudioFile):
		return apperrors.ErrNoAudioFile()
	case stdErrors.Is(err, entities.ErrEmptyFilename):
		return apperrors.ErrNoFileSelected()
	case stdErrors.Is(err, entities.ErrUnsupportedExtension):
		return apperrors.ErrUnsupportedFormat(upload.Filename, s.cfg.AllowedExtensions)
	case stdErrors.Is(err, entities.ErrFileTooLarge):
		return apperrors.ErrFileTooLarge(upload.Size, s.cfg.MaxSizeMB)
	}

	var se *StageError
	if !stdErrors.As(err, &se) {
		return apperrors.ErrProcessingFailed(err)
	}

	switch se.Stage {
	case StageStore:
		return apperrors.ErrUploadStoreFailed(se.Err)
	case StageNormalize:
		return apperrors.ErrConversionFailed(se.Err)
	case StageTranscribe:
		if stdErrors.Is(se.Err, entities.ErrUnintelligibleAudio) {
			return apperrors.ErrSpeechUnintelligible()
		}
		var speechErr *entities.SpeechServiceError
		if stdErrors.As(se.Err, &speechErr) {
			return apperrors.ErrSpeechServiceFailed(speechErr.Err)
		}
		return apperrors.ErrAITranscriptionFailed(se.Err)
	default:
		return apperrors.ErrProcessingFailed(se.Err)
	}
}

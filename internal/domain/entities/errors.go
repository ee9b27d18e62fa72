package entities

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// Upload errors
	ErrNoAudioFile          = errors.New("no audio file provided")
	ErrEmptyFilename        = errors.New("no file selected")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrFileTooLarge         = errors.New("file too large")

	// Conversion errors
	ErrConversionTimeout = errors.New("audio conversion timed out")
	ErrConvertedMissing  = errors.New("converted WAV file was not created")

	// Transcription errors
	ErrUnintelligibleAudio = errors.New("speech recognition could not understand the audio")

	// Pipeline errors
	ErrInvalidTransition = errors.New("invalid processing state transition")
)

// SpeechServiceError reports that the speech backend was unreachable or answered with an error
type SpeechServiceError struct {
	Err error
}

func (e *SpeechServiceError) Error() string {
	return fmt.Sprintf("speech recognition service error: %v", e.Err)
}

func (e *SpeechServiceError) Unwrap() error {
	return e.Err
}

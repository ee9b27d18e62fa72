package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// AppError là custom error type cho application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying error to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// Describe returns the client-facing message, including the underlying cause when present
func (e AppError) Describe() string {
	if e.Raw != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Raw)
	}
	return e.Message
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

// ErrRequestRejected wraps an error raised by the HTTP framework or its middleware
func ErrRequestRejected(status int, message string, err error) AppError {
	code := ErrorCode_REQUEST_REJECTED
	switch {
	case status == http.StatusRequestEntityTooLarge:
		code = ErrorCode_UPLOAD_FILE_TOO_LARGE
	case status >= http.StatusInternalServerError:
		code = ErrorCode_INTERNAL
	}
	return AppError{
		Raw:      err,
		HTTPCode: status,
		Code:     code,
		Message:  message,
	}
}

// Upload Errors
func ErrNoAudioFile() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_UPLOAD_MISSING_FILE,
		Message:  "No audio file provided",
	}
}

func ErrNoFileSelected() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_UPLOAD_EMPTY_FILENAME,
		Message:  "No file selected",
	}
}

func ErrUnsupportedFormat(filename string, supported []string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_UPLOAD_UNSUPPORTED_FORMAT,
		Message:  fmt.Sprintf("File type not supported. Use: %s", strings.Join(supported, ", ")),
	}.WithDetail("filename", filename)
}

func ErrFileTooLarge(size int64, maxMB int64) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_UPLOAD_FILE_TOO_LARGE,
		Message:  fmt.Sprintf("File too large. Maximum size is %dMB", maxMB),
	}.WithDetail("size_bytes", fmt.Sprintf("%d", size))
}

func ErrUploadStoreFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_UPLOAD_STORE_FAILED,
		Message:  "Failed to store uploaded file",
	}
}

// Pipeline Errors
func ErrConversionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AUDIO_CONVERSION_FAILED,
		Message:  "Audio conversion failed",
	}
}

func ErrSpeechUnintelligible() AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_SPEECH_UNINTELLIGIBLE,
		Message:  "Speech recognition could not understand the audio",
	}
}

func ErrSpeechServiceFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_SPEECH_SERVICE_FAILED,
		Message:  "Speech recognition service error",
	}
}

func ErrAITranscriptionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_TRANSCRIPTION_FAILED,
		Message:  "Transcription failed",
	}
}

func ErrProcessingFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_PROCESSING_FAILED,
		Message:  "Processing failed",
	}
}

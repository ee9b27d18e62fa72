package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-summarizer/pkg/jobcontext"
)

const audioField = "audio"

// BackendStatus describes the generative backend for the health probe
type BackendStatus struct {
	Name       string
	Configured bool
}

// Meeting handles upload and health endpoints
type Meeting struct {
	svc     meeting.Service
	backend BackendStatus
	logger  *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(svc meeting.Service, backend BackendStatus, logger *zap.Logger) *Meeting {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Meeting{svc: svc, backend: backend, logger: logger}
}

// Upload processes a meeting recording end to end
// @Summary      Upload and summarize a meeting recording
// @Description  Converts the recording to mono 16 kHz WAV, transcribes it and returns a structured summary
// @Tags         Meetings
// @Accept       multipart/form-data
// @Produce      json
// @Param        audio  formData  file                   true  "Audio file (mp3, wav, m4a, flac), at most 25MB"
// @Success      200    {object}  dto.ProcessResponse     "Transcript and summary"
// @Failure      400    {object}  common.ErrorResponse    "Missing file, unsupported format or file too large"
// @Failure      500    {object}  common.ErrorResponse    "Conversion or transcription failed"
// @Router       /upload [post]
func (h *Meeting) Upload(c echo.Context) error {
	fh, err := c.FormFile(audioField)
	if err != nil {
		// multipart parts with an empty filename are parsed as plain values
		if form, ferr := c.MultipartForm(); ferr == nil {
			if _, ok := form.Value[audioField]; ok {
				return HandleError(h.logger, c, h.svc.ToAppError(entities.ErrEmptyFilename, meeting.Upload{}))
			}
		}
		return HandleError(h.logger, c, h.svc.ToAppError(entities.ErrNoAudioFile, meeting.Upload{}))
	}
	if fh.Filename == "" {
		return HandleError(h.logger, c, h.svc.ToAppError(entities.ErrEmptyFilename, meeting.Upload{}))
	}

	file, err := fh.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrUploadStoreFailed(err))
	}
	defer file.Close()

	size, err := measure(file)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrUploadStoreFailed(err))
	}

	upload := meeting.Upload{Filename: fh.Filename, Size: size, Body: file}
	if err := h.svc.Validate(upload.Filename, upload.Size); err != nil {
		return HandleError(h.logger, c, h.svc.ToAppError(err, upload))
	}

	ctx := jobcontext.Begin(c.Request().Context(), getRequestID(c))
	result, err := h.svc.Process(ctx, upload)
	if err != nil {
		return HandleError(h.logger, c, h.svc.ToAppError(err, upload))
	}

	return HandleSuccess(h.logger, c, dto.NewProcessResponse(
		result.Transcript,
		result.Summary,
		result.Filename,
		result.CompletedAt,
		result.WordCount,
		result.Degraded,
	))
}

// UploadOptions answers CORS preflight requests for the upload route
func (h *Meeting) UploadOptions(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// Health reports service readiness
// @Summary      Health check
// @Tags         Meetings
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *Meeting) Health(c echo.Context) error {
	generative := "not configured"
	if h.backend.Configured {
		generative = "configured"
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Services: map[string]string{
			"generative_backend": generative,
			"model":              h.backend.Name,
			"backend":            "running",
			"cors":               "enabled",
		},
		SupportedFormats: h.svc.SupportedFormats(),
		MaxFileSize:      fmt.Sprintf("%dMB", h.svc.MaxFileSizeMB()),
	})
}

// measure returns the stream length by seeking to the end and back
func measure(f io.Seeker) (int64, error) {
	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("seek upload: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("rewind upload: %w", err)
	}
	return size, nil
}

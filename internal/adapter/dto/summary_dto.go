package dto

import (
	"time"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// ProcessResponse represents the API response for a processed recording
type ProcessResponse struct {
	Success        bool                     `json:"success"`
	Transcript     string                   `json:"transcript"`
	Summary        *entities.MeetingSummary `json:"summary"`
	Filename       string                   `json:"filename"`
	ProcessingTime string                   `json:"processing_time"` // RFC3339 completion timestamp
	WordCount      int                      `json:"word_count"`
	Degraded       bool                     `json:"degraded"`
}

// HealthResponse represents the API response for the health probe
type HealthResponse struct {
	Status           string            `json:"status"`
	Timestamp        string            `json:"timestamp"`
	Services         map[string]string `json:"services"`
	SupportedFormats []string          `json:"supported_formats"`
	MaxFileSize      string            `json:"max_file_size"`
}

// NewProcessResponse builds the success payload
func NewProcessResponse(transcript string, summary *entities.MeetingSummary, filename string, completedAt time.Time, wordCount int, degraded bool) ProcessResponse {
	return ProcessResponse{
		Success:        true,
		Transcript:     transcript,
		Summary:        summary,
		Filename:       filename,
		ProcessingTime: completedAt.Format(time.RFC3339),
		WordCount:      wordCount,
		Degraded:       degraded,
	}
}

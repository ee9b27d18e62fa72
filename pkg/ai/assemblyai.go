package ai

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// ErrNoSpeech is returned when the backend finished but heard nothing it could transcribe
var ErrNoSpeech = errors.New("no spoken audio detected")

// LocalAudioError reports that the audio file could not be read before anything was sent
type LocalAudioError struct {
	Path string
	Err  error
}

func (e *LocalAudioError) Error() string {
	return fmt.Sprintf("open audio %s: %v", e.Path, e.Err)
}

func (e *LocalAudioError) Unwrap() error {
	return e.Err
}

// AssemblyAIClient transcribes local audio files with the official AssemblyAI SDK
type AssemblyAIClient struct {
	client *aai.Client
	params *aai.TranscriptOptionalParams
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	var apiKey, baseURL string
	if cfg != nil {
		apiKey = cfg.APIKey
		baseURL = cfg.BaseURL
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}

	opts := []aai.ClientOption{aai.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, aai.WithBaseURL(baseURL))
	}

	return &AssemblyAIClient{
		client: aai.NewClientWithOptions(opts...),
		params: &aai.TranscriptOptionalParams{
			Punctuate:  aai.Bool(true),
			FormatText: aai.Bool(true),
		},
	}
}

// Transcribe uploads the file, waits for the transcript and returns its text.
// A completed transcript without words yields ErrNoSpeech.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", &LocalAudioError{Path: audioPath, Err: err}
	}
	defer f.Close()

	transcript, err := c.client.Transcripts.TranscribeFromReader(ctx, f, c.params)
	if err != nil {
		return "", fmt.Errorf("assemblyai transcribe: %w", err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		msg := aai.ToString(transcript.Error)
		if strings.Contains(strings.ToLower(msg), "no spoken audio") {
			return "", fmt.Errorf("%w: %s", ErrNoSpeech, msg)
		}
		return "", fmt.Errorf("assemblyai transcript %s failed: %s", aai.ToString(transcript.ID), msg)
	}

	text := strings.TrimSpace(aai.ToString(transcript.Text))
	if text == "" {
		return "", ErrNoSpeech
	}

	return text, nil
}

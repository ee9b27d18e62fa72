package ai

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

const defaultGroqBaseURL = "https://api.groq.com/openai/v1"

// GroqClient is a chat-completions client for Groq's OpenAI-compatible API
type GroqClient struct {
	client *openai.Client
	model  string
}

// NewGroqClient creates a Groq client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewGroqClient(cfg *config.GroqConfig) *GroqClient {
	var apiKey, base, model string
	if cfg != nil {
		apiKey = cfg.APIKey
		base = cfg.BaseURL
		model = cfg.Model
	}
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY")
	}
	if base == "" {
		base = os.Getenv("GROQ_API_URL")
		if base == "" {
			base = defaultGroqBaseURL
		}
	}
	if model == "" {
		model = "llama-3.1-70b-versatile"
	}

	oc := openai.DefaultConfig(apiKey)
	oc.BaseURL = base

	return &GroqClient{
		client: openai.NewClientWithConfig(oc),
		model:  model,
	}
}

// Name identifies the backend in logs and health output
func (g *GroqClient) Name() string {
	return "groq:" + g.model
}

// Generate sends the prompt as a single user message and returns the assistant content
func (g *GroqClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.3,
		MaxTokens:   8000,
	})
	if err != nil {
		return "", fmt.Errorf("groq chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from groq")
	}
	return resp.Choices[0].Message.Content, nil
}

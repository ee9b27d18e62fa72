package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// ErrNoJSONFound is returned when a model reply contains nothing that looks like a JSON object
var ErrNoJSONFound = errors.New("no JSON object found in response")

// Parser handles parsing and validation of generative backend responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseSummary extracts the JSON object from a model reply and decodes it into a MeetingSummary.
// The returned summary is already normalized.
func (p *Parser) ParseSummary(reply string) (*entities.MeetingSummary, error) {
	raw, err := ExtractJSON(reply)
	if err != nil {
		return nil, err
	}

	var summary entities.MeetingSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	summary.Normalize()
	return &summary, nil
}

// ExtractJSON extracts JSON content from markdown code blocks or plain text.
// A fenced block (```json or ```) wins; otherwise the outermost {...} span is used.
func ExtractJSON(content string) (string, error) {
	content = strings.TrimSpace(content)

	if start := strings.Index(content, "```"); start != -1 {
		body := content[start+3:]
		body = strings.TrimPrefix(body, "json")
		body = strings.TrimPrefix(body, "JSON")
		if end := strings.Index(body, "```"); end != -1 {
			body = body[:end]
		}
		body = strings.TrimSpace(body)
		if strings.HasPrefix(body, "{") {
			return body, nil
		}
	}

	open := strings.Index(content, "{")
	closing := strings.LastIndex(content, "}")
	if open == -1 || closing < open {
		return "", ErrNoJSONFound
	}

	return content[open : closing+1], nil
}

package ai

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/pkg/jobcontext"
)

const fallbackExcerptRunes = 200

// Generator produces raw text for a prompt. Implemented by the Gemini and Groq clients.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Summarizer turns a transcript into a structured MeetingSummary
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) *entities.MeetingSummary
}

type summarizer struct {
	generator Generator
	parser    *Parser
	logger    *zap.Logger
}

// NewSummarizer constructs a Summarizer. A nil generator is allowed and always yields the fallback summary.
func NewSummarizer(generator Generator, logger *zap.Logger) Summarizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &summarizer{
		generator: generator,
		parser:    NewParser(),
		logger:    logger,
	}
}

// Summarize never fails: any backend or parsing problem produces the fallback summary with Degraded set.
func (s *summarizer) Summarize(ctx context.Context, transcript string) (summary *entities.MeetingSummary) {
	log := s.logger.With(zap.String("request_id", jobcontext.RequestID(ctx)))

	defer func() {
		if r := recover(); r != nil {
			log.Error("❌ Summary generation panicked, using fallback summary",
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
			summary = FallbackSummary(transcript)
		}
	}()

	if s.generator == nil {
		log.Warn("⚠️ No generative backend configured, using fallback summary")
		return FallbackSummary(transcript)
	}

	start := time.Now()
	reply, err := s.generator.Generate(ctx, BuildPrompt(transcript))
	if err != nil {
		log.Error("❌ Summary generation failed",
			zap.String("backend", s.generator.Name()),
			zap.Error(err),
		)
		return FallbackSummary(transcript)
	}

	summary, err = s.parser.ParseSummary(reply)
	if err != nil {
		log.Error("❌ Failed to parse summary response",
			zap.String("backend", s.generator.Name()),
			zap.String("raw_response", truncate(reply, 500)),
			zap.Error(err),
		)
		return FallbackSummary(transcript)
	}

	log.Info("✅ Summary generated",
		zap.String("backend", s.generator.Name()),
		zap.Int("decisions", summary.MeetingMetrics.TotalDecisions),
		zap.Int("action_items", summary.MeetingMetrics.TotalActionItems),
		zap.Duration("took", time.Since(start)),
	)
	return summary
}

// BuildPrompt embeds the transcript in the fixed summarization instructions
func BuildPrompt(transcript string) string {
	return fmt.Sprintf(`Analyze this meeting transcript and provide structured output:

TRANSCRIPT:
%s

Provide JSON with:
- summary: brief overview
- key_decisions: list of decisions
- action_items: list with task, owner, deadline, priority
- next_steps: list of next steps
- meeting_metrics: total_decisions, total_action_items, key_topics

Be specific and extract real content from the transcript.
`, transcript)
}

// FallbackSummary is the deterministic placeholder used when the backend cannot produce a summary
func FallbackSummary(transcript string) *entities.MeetingSummary {
	return &entities.MeetingSummary{
		Summary:      "Generated summary: " + truncate(transcript, fallbackExcerptRunes),
		KeyDecisions: []string{"Review meeting notes for decisions"},
		ActionItems: []entities.ActionItem{{
			Task:     "Review and extract action items from transcript",
			Owner:    "Team",
			Deadline: "ASAP",
			Priority: "High",
		}},
		NextSteps: []string{"Review complete transcript"},
		MeetingMetrics: entities.MeetingMetrics{
			TotalDecisions:   1,
			TotalActionItems: 1,
			KeyTopics:        []string{"Meeting Discussion"},
		},
		Degraded: true,
	}
}

// truncate cuts s to n runes and appends "..." when something was dropped
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

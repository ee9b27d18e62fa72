package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOverwritesReportedCounts(t *testing.T) {
	s := MeetingSummary{
		KeyDecisions: []string{"ship v2", "hire designer"},
		ActionItems:  []ActionItem{{Task: "draft plan"}},
		MeetingMetrics: MeetingMetrics{
			TotalDecisions:   10,
			TotalActionItems: 7,
			KeyTopics:        []string{"roadmap"},
		},
	}

	s.Normalize()

	assert.Equal(t, 2, s.MeetingMetrics.TotalDecisions)
	assert.Equal(t, 1, s.MeetingMetrics.TotalActionItems)
	assert.Equal(t, []string{"roadmap"}, s.MeetingMetrics.KeyTopics)
	assert.NotNil(t, s.NextSteps)
}

func TestNormalizeDefaultsTopics(t *testing.T) {
	var s MeetingSummary
	s.Normalize()

	assert.Equal(t, 0, s.MeetingMetrics.TotalDecisions)
	assert.Equal(t, 0, s.MeetingMetrics.TotalActionItems)
	assert.Equal(t, []string{DefaultKeyTopic}, s.MeetingMetrics.KeyTopics)
	assert.Empty(t, s.KeyDecisions)
	assert.NotNil(t, s.ActionItems)
}

func TestTranscriptWordCount(t *testing.T) {
	assert.Equal(t, 0, Transcript{}.WordCount())
	assert.Equal(t, 4, Transcript{Text: "  we ship\n on\tFriday "}.WordCount())
}

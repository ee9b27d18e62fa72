package entities

// MeetingSummary is the structured summary returned for one meeting recording
type MeetingSummary struct {
	Summary        string         `json:"summary"`
	KeyDecisions   []string       `json:"key_decisions"`
	ActionItems    []ActionItem   `json:"action_items"`
	NextSteps      []string       `json:"next_steps"`
	MeetingMetrics MeetingMetrics `json:"meeting_metrics"`

	// Degraded marks a placeholder summary produced without the generative backend
	Degraded bool `json:"-"`
}

// MeetingMetrics holds counters derived from the summary lists
type MeetingMetrics struct {
	TotalDecisions   int      `json:"total_decisions"`
	TotalActionItems int      `json:"total_action_items"`
	KeyTopics        []string `json:"key_topics"`
}

// DefaultKeyTopic is used when the backend reports no topics
const DefaultKeyTopic = "General Discussion"

// Normalize enforces the summary invariants: metric counts always mirror the
// list lengths, lists are never nil and at least one topic is present.
func (s *MeetingSummary) Normalize() {
	if s.KeyDecisions == nil {
		s.KeyDecisions = []string{}
	}
	if s.ActionItems == nil {
		s.ActionItems = []ActionItem{}
	}
	if s.NextSteps == nil {
		s.NextSteps = []string{}
	}

	s.MeetingMetrics.TotalDecisions = len(s.KeyDecisions)
	s.MeetingMetrics.TotalActionItems = len(s.ActionItems)
	if len(s.MeetingMetrics.KeyTopics) == 0 {
		s.MeetingMetrics.KeyTopics = []string{DefaultKeyTopic}
	}
}

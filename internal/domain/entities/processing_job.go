package entities

import (
	"fmt"
	"time"
)

// ProcessingState represents the stage a meeting upload has reached
type ProcessingState string

const (
	StateReceived    ProcessingState = "received"
	StateValidated   ProcessingState = "validated"
	StateStored      ProcessingState = "stored"
	StateNormalized  ProcessingState = "normalized"
	StateTranscribed ProcessingState = "transcribed"
	StateSummarized  ProcessingState = "summarized"
	StateCompleted   ProcessingState = "completed"
	StateFailed      ProcessingState = "failed"
)

var nextState = map[ProcessingState]ProcessingState{
	StateReceived:    StateValidated,
	StateValidated:   StateStored,
	StateStored:      StateNormalized,
	StateNormalized:  StateTranscribed,
	StateTranscribed: StateSummarized,
	StateSummarized:  StateCompleted,
}

// IsTerminal reports whether no further transition is allowed
func (s ProcessingState) IsTerminal() bool {
	return s == StateCompleted || s == StateFailed
}

// ProcessingJob tracks one request through the pipeline
type ProcessingJob struct {
	RequestID string            `json:"request_id"`
	State     ProcessingState   `json:"state"`
	History   []ProcessingState `json:"history"`
	LastError string            `json:"last_error,omitempty"`
	StartedAt time.Time         `json:"started_at"`
	EndedAt   *time.Time        `json:"ended_at,omitempty"`
}

// NewProcessingJob creates a job in the received state
func NewProcessingJob(requestID string) *ProcessingJob {
	return &ProcessingJob{
		RequestID: requestID,
		State:     StateReceived,
		History:   []ProcessingState{StateReceived},
		StartedAt: time.Now(),
	}
}

// Advance moves the job to the next state; only the linear successor is accepted
func (j *ProcessingJob) Advance(to ProcessingState) error {
	if j.State.IsTerminal() {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, j.State)
	}
	if nextState[j.State] != to {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, j.State, to)
	}
	j.set(to)
	return nil
}

// Fail moves the job to the failed state from any non-terminal state
func (j *ProcessingJob) Fail(err error) {
	if j.State.IsTerminal() {
		return
	}
	if err != nil {
		j.LastError = err.Error()
	}
	j.set(StateFailed)
}

func (j *ProcessingJob) set(state ProcessingState) {
	j.State = state
	j.History = append(j.History, state)
	if state.IsTerminal() {
		now := time.Now()
		j.EndedAt = &now
	}
}

// Duration returns the elapsed processing time
func (j *ProcessingJob) Duration() time.Duration {
	if j.EndedAt != nil {
		return j.EndedAt.Sub(j.StartedAt)
	}
	return time.Since(j.StartedAt)
}

package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessingJobHappyPath(t *testing.T) {
	job := NewProcessingJob("req-1")

	for _, s := range []ProcessingState{StateValidated, StateStored, StateNormalized, StateTranscribed, StateSummarized, StateCompleted} {
		require.NoError(t, job.Advance(s))
	}

	assert.Equal(t, StateCompleted, job.State)
	assert.True(t, job.State.IsTerminal())
	assert.NotNil(t, job.EndedAt)
	assert.Equal(t, []ProcessingState{
		StateReceived, StateValidated, StateStored, StateNormalized,
		StateTranscribed, StateSummarized, StateCompleted,
	}, job.History)
}

func TestProcessingJobRejectsSkippedStates(t *testing.T) {
	job := NewProcessingJob("req-2")

	err := job.Advance(StateStored)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, StateReceived, job.State)
}

func TestProcessingJobFailFromAnyState(t *testing.T) {
	job := NewProcessingJob("req-3")
	require.NoError(t, job.Advance(StateValidated))
	require.NoError(t, job.Advance(StateStored))

	job.Fail(errors.New("ffmpeg exploded"))

	assert.Equal(t, StateFailed, job.State)
	assert.Equal(t, "ffmpeg exploded", job.LastError)
	require.Error(t, job.Advance(StateNormalized))

	// terminal states stay put
	job.Fail(errors.New("again"))
	assert.Equal(t, "ffmpeg exploded", job.LastError)
}

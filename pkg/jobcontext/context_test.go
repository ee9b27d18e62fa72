package jobcontext

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBeginSetsMetadata(t *testing.T) {
	ctx := Begin(context.Background(), "req-1")

	md := GetMetadata(ctx)
	require.Equal(t, "req-1", md.RequestID)
	require.False(t, md.StartTime.IsZero())
	require.Empty(t, md.Stage)
}

func TestBeginGeneratesID(t *testing.T) {
	ctx := Begin(context.Background(), "")
	require.Len(t, RequestID(ctx), 36)
}

func TestRunExposesStage(t *testing.T) {
	ctx := Begin(context.Background(), "req-2")

	var seen string
	err := Run(ctx, "normalize", func(ctx context.Context) error {
		seen = Stage(ctx)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, "normalize", seen)
}

func TestRunRecoversPanic(t *testing.T) {
	err := Run(context.Background(), "transcribe", func(context.Context) error {
		panic("boom")
	})
	require.ErrorContains(t, err, "panic recovered in transcribe: boom")
}

func TestRunSkipsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := Run(ctx, "summarize", func(context.Context) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, called)
}

func TestRunPassesThroughError(t *testing.T) {
	want := errors.New("nope")
	err := Run(context.Background(), "store", func(context.Context) error { return want })
	require.ErrorIs(t, err, want)
}

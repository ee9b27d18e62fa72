package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
	"github.com/johnquangdev/meeting-summarizer/pkg/executor"
)

type call struct {
	name string
	args []string
}

// fakeExecutor answers each call with the next scripted response and writes the
// output file (last argument) when the response succeeds and writeOutput is set.
type fakeExecutor struct {
	calls       []call
	responses   []error
	writeOutput bool
	block       bool
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	var err error
	if i := len(f.calls) - 1; i < len(f.responses) {
		err = f.responses[i]
	}
	if err == nil && f.writeOutput {
		if werr := os.WriteFile(args[len(args)-1], []byte("RIFF"), 0o644); werr != nil {
			return "", werr
		}
	}
	return "", err
}

func sourceFile(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "meeting_20240101_120000.mp3")
	require.NoError(t, os.WriteFile(p, []byte("ID3"), 0o644))
	return p
}

func TestConvertedPath(t *testing.T) {
	require.Equal(t, "/tmp/a/meeting_1_converted.wav", ConvertedPath("/tmp/a/meeting_1.mp3"))
	require.Equal(t, "clip_converted.wav", ConvertedPath("clip"))
}

func TestNormalizeUsesPathFFmpegByDefault(t *testing.T) {
	src := sourceFile(t)
	fx := &fakeExecutor{writeOutput: true}
	n := New(config.FFmpegConfig{Timeout: time.Second}, fx, zap.NewNop())

	got, err := n.Normalize(context.Background(), src)
	require.NoError(t, err)
	require.Equal(t, ConvertedPath(src), got.Path)
	require.Equal(t, 16000, got.SampleRate)
	require.Equal(t, 1, got.Channels)

	require.Len(t, fx.calls, 1)
	require.Equal(t, "ffmpeg", fx.calls[0].name)
	require.Equal(t, []string{"-i", src, "-ac", "1", "-ar", "16000", "-y", ConvertedPath(src)}, fx.calls[0].args)
}

func TestNormalizeFallsBackWhenConfiguredBinaryCannotStart(t *testing.T) {
	src := sourceFile(t)
	fx := &fakeExecutor{
		responses:   []error{&executor.StartError{Name: "/opt/ffmpeg/bin/ffmpeg", Err: os.ErrNotExist}, nil},
		writeOutput: true,
	}
	n := New(config.FFmpegConfig{Path: "/opt/ffmpeg/bin/ffmpeg", Timeout: time.Second}, fx, zap.NewNop())

	_, err := n.Normalize(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, fx.calls, 2)
	require.Equal(t, "/opt/ffmpeg/bin/ffmpeg", fx.calls[0].name)
	require.Equal(t, "ffmpeg", fx.calls[1].name)
}

func TestNormalizeDoesNotFallBackOnNonZeroExit(t *testing.T) {
	src := sourceFile(t)
	fx := &fakeExecutor{
		responses: []error{errors.New("command '/opt/ffmpeg' failed: exit status 1\nstderr: Invalid data found when processing input")},
	}
	n := New(config.FFmpegConfig{Path: "/opt/ffmpeg", Timeout: time.Second}, fx, zap.NewNop())

	_, err := n.Normalize(context.Background(), src)
	require.Error(t, err)
	require.Len(t, fx.calls, 1)
	require.Contains(t, err.Error(), "FFmpeg conversion failed")
	require.Contains(t, err.Error(), "Invalid data found when processing input")
}

func TestNormalizeMissingOutput(t *testing.T) {
	src := sourceFile(t)
	fx := &fakeExecutor{}
	n := New(config.FFmpegConfig{Timeout: time.Second}, fx, zap.NewNop())

	_, err := n.Normalize(context.Background(), src)
	require.ErrorIs(t, err, entities.ErrConvertedMissing)
}

func TestNormalizeTimeout(t *testing.T) {
	src := sourceFile(t)
	fx := &fakeExecutor{block: true}
	n := New(config.FFmpegConfig{Timeout: 20 * time.Millisecond}, fx, zap.NewNop())

	_, err := n.Normalize(context.Background(), src)
	require.ErrorIs(t, err, entities.ErrConversionTimeout)
}

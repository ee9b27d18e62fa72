package jobcontext

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type KeyContext string

var (
	keyRequestID KeyContext = "request_id"
	keyStartTime KeyContext = "request_start_time"
	keyStage     KeyContext = "stage"
)

// Metadata holds what is known about the request a pipeline run belongs to
type Metadata struct {
	RequestID string
	Stage     string
	StartTime time.Time
}

// Begin attaches request metadata to ctx. An empty requestID gets a fresh uuid.
func Begin(parentCtx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx := context.WithValue(parentCtx, keyRequestID, requestID)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())
	return ctx
}

// Run executes one pipeline stage with panic recovery. The stage name is visible to fn via Stage(ctx).
func Run(ctx context.Context, stage string, fn func(context.Context) error) (err error) {
	ctx = context.WithValue(ctx, keyStage, stage)

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic recovered in %s: %v", stage, p)
		}
	}()

	if ctx.Err() != nil {
		return fmt.Errorf("context cancelled before %s: %w", stage, ctx.Err())
	}

	return fn(ctx)
}

// RequestID extracts the request ID from context, or "" when absent
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)
	return id
}

// Stage extracts the current stage name from context
func Stage(ctx context.Context) string {
	stage, _ := ctx.Value(keyStage).(string)
	return stage
}

// StartTime extracts the request start time from context
func StartTime(ctx context.Context) (time.Time, bool) {
	t, ok := ctx.Value(keyStartTime).(time.Time)
	return t, ok
}

// GetMetadata extracts all request metadata from context
func GetMetadata(ctx context.Context) *Metadata {
	start, _ := StartTime(ctx)
	return &Metadata{
		RequestID: RequestID(ctx),
		Stage:     Stage(ctx),
		StartTime: start,
	}
}

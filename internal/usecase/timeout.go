package usecase

import (
	"context"
	"time"
)

// withCallTimeout bounds a single store or email call. A zero timeout only adds cancellation.
func withCallTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

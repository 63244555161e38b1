package timex

import (
	"context"
	"time"
)

// GraceContext returns a context that stays alive after parent is done and
// is cancelled grace later. It keeps parent's values. Shutdown steps that
// run one after another can share it as a single deadline.
func GraceContext(parent context.Context, grace time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))

	go func() {
		select {
		case <-parent.Done():
		case <-ctx.Done():
			return
		}

		timer := time.NewTimer(grace)
		defer timer.Stop()

		select {
		case <-timer.C:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

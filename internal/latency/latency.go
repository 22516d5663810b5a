// Package latency simulates the network round-trip of the demo backend.
package latency

import (
	"context"
	"time"
)

type Waiter interface {
	Wait(ctx context.Context) error
}

// Fixed waits for its duration or until ctx is done, whichever comes first.
type Fixed time.Duration

const None = Fixed(0)

func (d Fixed) Wait(ctx context.Context) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(time.Duration(d))
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

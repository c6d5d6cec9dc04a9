package tracker

import (
	"context"
	"time"
)

// Loop runs the tracker once immediately and then on a fixed interval,
// forever, until ctx is cancelled.
//
// The loop sleeps for max(0, interval - elapsed) after each completed run
// rather than using a wall-clock ticker: a run that overshoots the interval
// delays the next one instead of overlapping it.
func (t *Tracker) Loop(ctx context.Context, interval time.Duration) {
	for {
		report := t.Run(ctx)
		t.LogReport(report)

		wait := interval - report.Elapsed
		if wait < 0 {
			t.logger.Warn("run exceeded interval, starting next run without sleeping",
				"interval", interval,
				"elapsed", report.Elapsed,
			)
			wait = 0
		}

		select {
		case <-ctx.Done():
			t.logger.Info("tracker loop stopped")
			return
		case <-time.After(wait):
		}
	}
}

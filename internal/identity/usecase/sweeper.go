package usecase

import (
	"context"
	"log/slog"
	"time"
)

// StartExpirySweeper launches a background loop that periodically drops
// expired pending signups. The sweep is housekeeping for memory only; expiry
// is always re-checked at read time, so a stale entry the sweeper has not
// reached yet is still rejected.
func (s *Usecase) StartExpirySweeper(ctx context.Context) {
	interval := s.cfg.GetMinute("modules.identity.sweep_interval_minutes")
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	s.goroutine.Go(ctx, func(ctx context.Context) error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if n := s.pending.SweepExpired(s.clock.Now()); n > 0 {
					slog.InfoContext(ctx, "swept expired pending signups", "count", n)
				}
			}
		}
	})
}

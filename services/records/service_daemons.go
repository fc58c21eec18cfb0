package records

import (
	"context"
	"log/slog"
	"time"
)

// RunRefreshDaemon periodically refreshes the active student's record
// until ctx is cancelled. identities without an active student are
// skipped, not an error: the app may not have signed in yet.
func (s *Service) RunRefreshDaemon(ctx context.Context, interval time.Duration) {
	slog.InfoContext(ctx, "starting record refresh daemon", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("record refresh daemon stopped")
			return
		case <-ticker.C:
		}

		identity := s.activeIdentity(ctx)
		if identity == "" {
			continue
		}
		if _, err := s.SilentRefresh(ctx, identity); err != nil {
			slog.WarnContext(ctx, "scheduled refresh failed", "identity", identity, "err", err)
		}
	}
}

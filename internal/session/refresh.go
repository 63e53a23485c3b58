package session

import (
	"context"
	"slices"
	"time"
)

// Refresh pulls a new snapshot when at least one refresh interval has passed
// since the last successful pull. The selection follows the previously
// selected PID if it is still visible. An expired status message is cleared
// on every call, whether or not a pull happens.
//
// A failed pull keeps the last good snapshot and reports the error as a
// status message; it is retried after another interval. Refresh returns true
// when a new snapshot was installed.
func (s *State) Refresh(ctx context.Context, now time.Time) bool {
	s.expireMessage(now)

	if !s.due(now) {
		return false
	}
	s.lastAttempt = now

	prevPID := ""
	if p, ok := s.SelectedProcess(); ok {
		prevPID = p.PID
	}

	start := time.Now()
	procs, err := s.lister.List(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to list processes")
		s.setMessage(SeverityError, now, "Failed to list processes: %v", err)
		return false
	}

	s.snapshot = slices.Clone(procs)
	s.sortSnapshot()
	s.ApplyFilter()

	if prevPID != "" {
		if pos := s.indexOfPID(prevPID); pos >= 0 {
			s.selected = pos
		}
	}
	s.lastRefresh = now

	s.log.Debug().
		Int("count", len(s.snapshot)).
		Int("visible", len(s.filtered)).
		Dur("took", time.Since(start)).
		Msg("snapshot refreshed")
	return true
}

// ForceRefresh makes the next Refresh call pull regardless of the interval
func (s *State) ForceRefresh() {
	s.lastRefresh = s.lastRefresh.Add(-2 * s.refreshInterval)
	s.lastAttempt = time.Time{}
}

// due reports whether a pull should happen at now. A failed attempt also
// waits one interval so a broken lister is not hammered on every tick.
func (s *State) due(now time.Time) bool {
	if !s.lastRefresh.IsZero() && now.Sub(s.lastRefresh) < s.refreshInterval {
		return false
	}
	if !s.lastAttempt.IsZero() && now.Sub(s.lastAttempt) < s.refreshInterval {
		return false
	}
	return true
}

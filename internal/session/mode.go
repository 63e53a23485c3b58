package session

import (
	"context"
	"math"
	"time"
	"unicode/utf8"

	"procsweep/internal/process"
)

// Mode is the exclusive input mode. It decides how keys are interpreted.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeConfirmKill
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeConfirmKill:
		return "confirm_kill"
	default:
		return "normal"
	}
}

func (s *State) setMode(m Mode) {
	if s.mode == m {
		return
	}
	s.log.Debug().Stringer("from", s.mode).Stringer("to", m).Msg("mode changed")
	s.mode = m
	if m != ModeConfirmKill {
		s.killTarget = nil
	}
}

// EnterSearch switches from normal to search mode with an empty query
func (s *State) EnterSearch() {
	if s.mode != ModeNormal {
		return
	}
	s.query = ""
	s.ApplyFilter()
	s.setMode(ModeSearch)
}

// SearchInput appends text to the query and re-filters immediately
func (s *State) SearchInput(text string) {
	if s.mode != ModeSearch || text == "" {
		return
	}
	s.query += text
	s.ApplyFilter()
}

// SearchBackspace removes the last character of the query and re-filters
func (s *State) SearchBackspace() {
	if s.mode != ModeSearch {
		return
	}
	if s.query != "" {
		_, size := utf8.DecodeLastRuneInString(s.query)
		s.query = s.query[:len(s.query)-size]
	}
	s.ApplyFilter()
}

// CancelSearch clears the query and returns to normal mode
func (s *State) CancelSearch() {
	if s.mode != ModeSearch {
		return
	}
	s.query = ""
	s.ApplyFilter()
	s.setMode(ModeNormal)
}

// ConfirmSearch keeps the query and returns to normal mode
func (s *State) ConfirmSearch() {
	if s.mode != ModeSearch {
		return
	}
	s.ApplyFilter()
	s.setMode(ModeNormal)
}

// EnterConfirmKill opens the kill confirmation and pins the selected process
// as its target. It opens even with nothing selected; confirming then does
// nothing.
func (s *State) EnterConfirmKill() {
	if s.mode != ModeNormal {
		return
	}
	s.setMode(ModeConfirmKill)
	if p, ok := s.SelectedProcess(); ok {
		s.killTarget = &p
	}
}

// ConfirmKill answers the kill confirmation with yes. Only the pinned target
// is terminated; refreshes while the prompt is open can move the selection
// but not the target. A target that has left the snapshot is skipped
// silently.
func (s *State) ConfirmKill(ctx context.Context, now time.Time) {
	if s.mode != ModeConfirmKill {
		return
	}
	defer s.setMode(ModeNormal)

	if s.killTarget == nil || s.indexInSnapshot(s.killTarget.PID) < 0 {
		return
	}
	s.kill(ctx, now, *s.killTarget)
}

// CancelKill answers the kill confirmation with no. Nothing else changes.
func (s *State) CancelKill() {
	if s.mode != ModeConfirmKill {
		return
	}
	s.setMode(ModeNormal)
}

// KillSelected asks the terminator to end the selected process.
//
// On success the next Refresh is forced so the list reflects the OS rather
// than a locally edited snapshot. On failure the error is shown as a status
// message. A missing selection or an unusable PID is silently ignored. The
// mode is normal afterwards in every case.
func (s *State) KillSelected(ctx context.Context, now time.Time) {
	defer s.setMode(ModeNormal)

	p, ok := s.SelectedProcess()
	if !ok {
		return
	}
	s.kill(ctx, now, p)
}

// kill terminates p. PIDs that NumericPID rejects, and 0, are ignored.
func (s *State) kill(ctx context.Context, now time.Time, p process.Process) {
	n, ok := p.NumericPID()
	if !ok || n == 0 || n > math.MaxInt32 {
		return
	}
	pid := int(n)

	s.log.Info().Int("pid", pid).Str("name", p.Name).Msg("terminating process")

	if err := s.terminator.Terminate(ctx, pid); err != nil {
		s.log.Error().Err(err).Int("pid", pid).Msg("failed to terminate process")
		s.setMessage(SeverityError, now, "Failed to kill process: %v", err)
		return
	}

	s.setMessage(SeverityInfo, now, "Process %s (%d) terminated", p.Name, pid)
	s.ForceRefresh()
}

func (s *State) indexInSnapshot(pid string) int {
	for i, p := range s.snapshot {
		if p.PID == pid {
			return i
		}
	}
	return -1
}

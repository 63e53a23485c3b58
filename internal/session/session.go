// Package session holds the state behind the process dashboard: the current
// snapshot, the sort/filter/selection view derived from it, the input mode
// and the transient status message.
//
// A State is owned by a single goroutine (the TUI update loop). None of its
// methods are safe for concurrent use, and none need to be. Time is always
// passed in by the caller so the refresh and expiry rules are deterministic.
package session

import (
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"procsweep/internal/process"
)

const (
	// DefaultRefreshInterval is the minimum time between two snapshot pulls
	DefaultRefreshInterval = 2 * time.Second

	// DefaultMessageTTL is how long a status message stays visible
	DefaultMessageTTL = 3 * time.Second
)

// Severity classifies a status message
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "info"
}

// Message is a transient, auto-expiring status line
type Message struct {
	Text      string
	Severity  Severity
	CreatedAt time.Time
}

// Options configures a State. Zero values select the defaults.
type Options struct {
	RefreshInterval time.Duration
	MessageTTL      time.Duration
	SortColumn      SortColumn
	Descending      bool
	Query           string // initial search filter
	Logger          *zerolog.Logger
}

// State is the process-monitor session
type State struct {
	lister     process.Lister
	terminator process.Terminator
	log        zerolog.Logger

	refreshInterval time.Duration
	messageTTL      time.Duration

	snapshot []process.Process
	filtered []int // indices into snapshot, in display order
	selected int   // index into filtered, -1 when nothing is selected

	sortColumn    SortColumn
	sortAscending bool

	mode       Mode
	query      string
	message    *Message
	killTarget *process.Process // pinned by EnterConfirmKill

	lastRefresh time.Time
	lastAttempt time.Time // last pull, successful or not
}

// New creates a State. The snapshot starts empty; the first call to Refresh
// always pulls.
func New(lister process.Lister, terminator process.Terminator, opts Options) *State {
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = DefaultRefreshInterval
	}
	if opts.MessageTTL <= 0 {
		opts.MessageTTL = DefaultMessageTTL
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &State{
		lister:          lister,
		terminator:      terminator,
		log:             logger.With().Str("component", "session").Logger(),
		refreshInterval: opts.RefreshInterval,
		messageTTL:      opts.MessageTTL,
		filtered:        []int{},
		selected:        -1,
		sortColumn:      opts.SortColumn,
		sortAscending:   !opts.Descending,
		mode:            ModeNormal,
		query:           opts.Query,
	}
}

// Mode returns the active input mode
func (s *State) Mode() Mode {
	return s.mode
}

// Query returns the search query. It is kept after leaving search mode.
func (s *State) Query() string {
	return s.query
}

// Sort returns the active sort column and direction
func (s *State) Sort() (col SortColumn, ascending bool) {
	return s.sortColumn, s.sortAscending
}

// Selected returns the selected position within the visible rows
func (s *State) Selected() (int, bool) {
	if s.selected < 0 {
		return 0, false
	}
	return s.selected, true
}

// SelectedProcess resolves the selection to its process record
func (s *State) SelectedProcess() (process.Process, bool) {
	if s.selected < 0 || s.selected >= len(s.filtered) {
		return process.Process{}, false
	}
	return s.snapshot[s.filtered[s.selected]], true
}

// Visible returns the records of the visible rows, in display order
func (s *State) Visible() []process.Process {
	rows := make([]process.Process, len(s.filtered))
	for i, idx := range s.filtered {
		rows[i] = s.snapshot[idx]
	}
	return rows
}

// Snapshot returns a copy of the full, sorted snapshot
func (s *State) Snapshot() []process.Process {
	return slices.Clone(s.snapshot)
}

// FilteredIndices returns a copy of the visible snapshot indices
func (s *State) FilteredIndices() []int {
	return slices.Clone(s.filtered)
}

// Total is the number of processes in the snapshot, visible or not
func (s *State) Total() int {
	return len(s.snapshot)
}

// LastRefresh is the time of the last successful snapshot pull
func (s *State) LastRefresh() time.Time {
	return s.lastRefresh
}

// KillTarget returns the process the open kill confirmation is about. It is
// the row that was selected when the confirmation opened, whatever the
// selection has become since.
func (s *State) KillTarget() (process.Process, bool) {
	if s.mode != ModeConfirmKill || s.killTarget == nil {
		return process.Process{}, false
	}
	return *s.killTarget, true
}

// Message returns the current status message, if any
func (s *State) Message() (Message, bool) {
	if s.message == nil {
		return Message{}, false
	}
	return *s.message, true
}

func (s *State) setMessage(sev Severity, now time.Time, format string, args ...any) {
	s.message = &Message{
		Text:      fmt.Sprintf(format, args...),
		Severity:  sev,
		CreatedAt: now,
	}
}

// expireMessage drops the message once it is older than the TTL
func (s *State) expireMessage(now time.Time) {
	if s.message != nil && now.Sub(s.message.CreatedAt) > s.messageTTL {
		s.message = nil
	}
}

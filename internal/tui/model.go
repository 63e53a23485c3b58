// Package tui is the input/render loop of procsweep: a bubbletea program
// that owns one session.State, re-checks it on a short tick and dispatches
// key presses to it according to the active input mode.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"procsweep/internal/session"
)

// DefaultPollInterval is how long the loop waits between two ticks
const DefaultPollInterval = 100 * time.Millisecond

// Options configures the TUI loop
type Options struct {
	// PollInterval bounds how long the loop waits for input before it
	// re-checks refresh and message expiry
	PollInterval time.Duration
	// CallTimeout bounds each list/terminate call; 0 means no bound
	CallTimeout time.Duration
	Logger      *zerolog.Logger
	// Clock returns the current time; defaults to time.Now
	Clock func() time.Time
}

// Model represents the TUI state. All session mutations happen inside
// Update, so the view never observes a half-applied change.
type Model struct {
	state        *session.State
	keys         keyMap
	help         help.Model
	log          zerolog.Logger
	pollInterval time.Duration
	callTimeout  time.Duration
	now          func() time.Time
	width        int
	height       int
}

// New creates a Model around state
func New(state *session.State, opts Options) Model {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return Model{
		state:        state,
		keys:         keys,
		help:         help.New(),
		log:          logger.With().Str("component", "tui").Logger(),
		pollInterval: opts.PollInterval,
		callTimeout:  opts.CallTimeout,
		now:          opts.Clock,
	}
}

// State exposes the session the model drives
func (m Model) State() *session.State {
	return m.state
}

// Init fires the first tick right away so the list is filled before the
// first poll interval elapses
func (m Model) Init() tea.Cmd {
	now := m.now
	return func() tea.Msg {
		return tickMsg(now())
	}
}

// tickCmd returns a command that sends a tick after the poll interval
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// callContext bounds a collaborator call by the configured timeout
func (m Model) callContext() (context.Context, context.CancelFunc) {
	if m.callTimeout > 0 {
		return context.WithTimeout(context.Background(), m.callTimeout)
	}
	return context.WithCancel(context.Background())
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		ctx, cancel := m.callContext()
		m.state.Refresh(ctx, time.Time(msg))
		cancel()
		return m, m.tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey dispatches a key press according to the active mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.state.Mode() {
	case session.ModeSearch:
		m.handleSearchKey(msg)
		return m, nil
	case session.ModeConfirmKill:
		m.handleConfirmKey(msg)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.log.Debug().Msg("quit requested")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.state.MoveNext()
	case key.Matches(msg, m.keys.Up):
		m.state.MovePrevious()
	case key.Matches(msg, m.keys.Top):
		m.state.MoveFirst()
	case key.Matches(msg, m.keys.Bottom):
		m.state.MoveLast()
	case key.Matches(msg, m.keys.Search):
		m.state.EnterSearch()
	case key.Matches(msg, m.keys.Kill):
		m.state.EnterConfirmKill()
	case key.Matches(msg, m.keys.SortPID):
		m.state.SetSort(session.SortPID)
	case key.Matches(msg, m.keys.SortName):
		m.state.SetSort(session.SortName)
	case key.Matches(msg, m.keys.SortMemory):
		m.state.SetSort(session.SortMemory)
	case key.Matches(msg, m.keys.Refresh):
		m.state.ForceRefresh()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.SearchCancel):
		m.state.CancelSearch()
	case key.Matches(msg, m.keys.SearchConfirm):
		m.state.ConfirmSearch()
	case key.Matches(msg, m.keys.SearchDelete):
		m.state.SearchBackspace()
	case msg.Type == tea.KeyRunes:
		m.state.SearchInput(string(msg.Runes))
	case msg.Type == tea.KeySpace:
		m.state.SearchInput(" ")
	}
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) {
	if !key.Matches(msg, m.keys.Confirm) {
		m.state.CancelKill()
		return
	}

	ctx, cancel := m.callContext()
	defer cancel()
	m.state.ConfirmKill(ctx, m.now())
}

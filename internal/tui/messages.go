package tui

import "time"

// TUI messages for the Elm architecture

// tickMsg drives the loop: every tick re-checks refresh and message expiry,
// with or without keyboard input
type tickMsg time.Time

// Package main implements procsweep, a terminal process monitor.
//
// procsweep provides an interactive terminal interface to:
//   - View running processes with their PID, name and resident memory
//   - Sort by PID, name or memory in either direction
//   - Filter the list with an incremental, case-insensitive search
//   - Terminate the selected process after a confirmation
//
// The application uses the Bubbletea framework with the Elm architecture pattern.
// All session state lives in a single session.State that only the TUI loop mutates.
//
// # Architecture
//
//   - internal/process: process discovery (Lister) and termination (Terminator)
//   - internal/session: selection, sorting, filtering, refresh and input modes
//   - internal/tui: key bindings, styles, rendering and the tick loop
//   - internal/config: defaults, YAML file, PROCSWEEP_* env vars and flags
//   - internal/logging: file-only zerolog logger
//   - internal/cmd: cobra command that wires everything together
//
// The Lister and Terminator interfaces allow custom implementations and
// easier testing through dependency injection.
package main

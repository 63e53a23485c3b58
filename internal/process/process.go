// Package process discovers running processes and terminates them.
//
// The Lister and Terminator interfaces are the only way the rest of procsweep
// talks to the operating system, which keeps the session logic testable with
// in-memory fakes.
package process

import (
	"context"
	"errors"
	"strconv"
)

// Terminator failures worth recognising. The text is shown to the user as is.
var (
	ErrPermissionDenied = errors.New("Permission denied") //nolint:staticcheck // user-facing text
	ErrNoSuchProcess    = errors.New("No such process")   //nolint:staticcheck // user-facing text
)

// Process is one entry of a process snapshot
type Process struct {
	PID      string
	Name     string
	MemoryMB float64
	Command  string // full command line, empty when the OS hides it
}

// NumericPID parses PID as an unsigned integer. ok is false for identifiers
// that are not plain decimal numbers.
func (p Process) NumericPID() (pid uint64, ok bool) {
	n, err := strconv.ParseUint(p.PID, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Lister returns the full current set of processes.
type Lister interface {
	List(ctx context.Context) ([]Process, error)
}

// Terminator asks the OS to end a process.
// Implementations must return an error, not panic, for a PID that no longer exists.
type Terminator interface {
	Terminate(ctx context.Context, pid int) error
}

// ListerFunc adapts a plain function to the Lister interface
type ListerFunc func(ctx context.Context) ([]Process, error)

// List calls f(ctx)
func (f ListerFunc) List(ctx context.Context) ([]Process, error) {
	return f(ctx)
}

// TerminatorFunc adapts a plain function to the Terminator interface
type TerminatorFunc func(ctx context.Context, pid int) error

// Terminate calls f(ctx, pid)
func (f TerminatorFunc) Terminate(ctx context.Context, pid int) error {
	return f(ctx, pid)
}

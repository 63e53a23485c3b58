//go:build !windows

package process

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sys/unix"
)

// SystemTerminator sends SIGTERM to processes on Unix-like systems
type SystemTerminator struct{}

// NewSystemTerminator returns the Terminator for the current platform
func NewSystemTerminator() *SystemTerminator {
	return &SystemTerminator{}
}

// Terminate sends SIGTERM (graceful shutdown) to pid
func (t *SystemTerminator) Terminate(ctx context.Context, pid int) error {
	if pid <= 0 || pid > math.MaxInt32 {
		return fmt.Errorf("invalid PID: %d", pid)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := unix.Kill(pid, unix.SIGTERM); err != nil {
		return describeKillError(err)
	}
	return nil
}

// describeKillError maps the errno values users actually hit to short
// messages for the status line
func describeKillError(err error) error {
	switch err {
	case unix.EPERM:
		return ErrPermissionDenied
	case unix.ESRCH:
		return ErrNoSuchProcess
	default:
		return err
	}
}

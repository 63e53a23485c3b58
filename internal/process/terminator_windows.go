//go:build windows

package process

import (
	"context"
	"fmt"
	"math"

	psproc "github.com/shirou/gopsutil/v4/process"
)

// SystemTerminator ends processes through the Windows process API
type SystemTerminator struct{}

// NewSystemTerminator returns the Terminator for the current platform
func NewSystemTerminator() *SystemTerminator {
	return &SystemTerminator{}
}

// Terminate ends pid. Windows has no SIGTERM, so this is a hard stop.
func (t *SystemTerminator) Terminate(ctx context.Context, pid int) error {
	if pid <= 0 || pid > math.MaxInt32 {
		return fmt.Errorf("invalid PID: %d", pid)
	}

	p, err := psproc.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		return ErrNoSuchProcess
	}
	if err := p.TerminateWithContext(ctx); err != nil {
		return fmt.Errorf("failed to terminate PID %d: %w", pid, err)
	}
	return nil
}

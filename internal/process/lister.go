package process

import (
	"context"
	"fmt"
	"strconv"

	psproc "github.com/shirou/gopsutil/v4/process"
)

const bytesPerMB = 1024 * 1024

// SystemLister lists processes of the local machine through gopsutil
type SystemLister struct{}

// NewSystemLister returns a Lister backed by the host process table
func NewSystemLister() *SystemLister {
	return &SystemLister{}
}

// List returns every process that could be inspected. Processes that exit
// while the table is being walked are skipped.
func (l *SystemLister) List(ctx context.Context) ([]Process, error) {
	procs, err := psproc.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read process table: %w", err)
	}

	result := make([]Process, 0, len(procs))
	for _, p := range procs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name, err := p.NameWithContext(ctx)
		if err != nil {
			// Gone, or a kernel thread we are not allowed to look at
			continue
		}

		var rss uint64
		if mem, err := p.MemoryInfoWithContext(ctx); err == nil && mem != nil {
			rss = mem.RSS
		}

		cmd, _ := p.CmdlineWithContext(ctx)

		result = append(result, newProcess(p.Pid, name, rss, cmd))
	}

	return result, nil
}

// newProcess builds a Process from raw OS values
func newProcess(pid int32, name string, rssBytes uint64, cmd string) Process {
	return Process{
		PID:      strconv.FormatInt(int64(pid), 10),
		Name:     name,
		MemoryMB: bytesToMB(rssBytes),
		Command:  cmd,
	}
}

// bytesToMB converts a byte count to megabytes
func bytesToMB(b uint64) float64 {
	return float64(b) / bytesPerMB
}

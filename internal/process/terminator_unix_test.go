//go:build !windows

package process

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestDescribeKillError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want string
	}{
		{"permission", unix.EPERM, "Permission denied"},
		{"missing process", unix.ESRCH, "No such process"},
		{"other errno passes through", unix.EINVAL, unix.EINVAL.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, describeKillError(tt.in), tt.want)
		})
	}
}

func TestSystemTerminatorMissingProcess(t *testing.T) {
	// Above the largest pid_max Linux allows, so it can never be live
	err := NewSystemTerminator().Terminate(context.Background(), 99999999)
	assert.ErrorIs(t, err, ErrNoSuchProcess)
}

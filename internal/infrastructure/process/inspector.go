// Package process answers questions about other running programs.
package process

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/t3lang/t3lang-shell/internal/ports"
)

// Inspector looks up processes through gopsutil. The calling process is never reported.
type Inspector struct {
	list func(ctx context.Context) ([]*process.Process, error)
	self int32
}

// NewInspector builds an Inspector over the live process table.
func NewInspector() *Inspector {
	return &Inspector{list: process.ProcessesWithContext, self: int32(os.Getpid())}
}

// Running reports whether a process matches name. An absolute name is compared
// with the executable path, anything else with the process name, case-insensitively.
func (i *Inspector) Running(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, nil
	}
	procs, err := i.list(ctx)
	if err != nil {
		return false, fmt.Errorf("list processes: %w", err)
	}
	for _, proc := range procs {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if proc.Pid == i.self {
			continue
		}
		if matches(ctx, proc, name) {
			return true, nil
		}
	}
	return false, nil
}

func matches(ctx context.Context, proc *process.Process, name string) bool {
	if filepath.IsAbs(name) {
		exe, err := proc.ExeWithContext(ctx)
		if err != nil {
			return false
		}
		return exe == name || strings.HasPrefix(exe, strings.TrimSuffix(name, "/")+"/")
	}
	procName, err := proc.NameWithContext(ctx)
	if err != nil {
		return false
	}
	return strings.EqualFold(procName, name)
}

var _ ports.ProcessInspector = (*Inspector)(nil)

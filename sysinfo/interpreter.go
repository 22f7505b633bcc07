package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
)

// Interpreter reports facts about this process and the runtime hosting it.
//
// Resident memory and the OS thread count come from the process table
// entry for os.Getpid(). If that entry is missing the process table is
// inconsistent, and the error matches ErrProcessNotFound.
func (c *Collector) Interpreter(ctx context.Context) (InterpreterInfo, error) {
	self, err := c.selfProcess(ctx, int32(os.Getpid()))
	if err != nil {
		return InterpreterInfo{}, err
	}

	rt := c.runtime
	return InterpreterInfo{
		BitWidth:               rt.BitWidth(),
		RecursionLimit:         rt.RecursionLimit(),
		UsedMemory:             self.RSS,
		TotalObjects:           rt.LiveObjectCount(),
		RuntimeThreads:         rt.ThreadCount(),
		OperatingSystemThreads: int(self.Threads),
		Version:                rt.Version(),
		ByteOrder:              rt.ByteOrder(),
		APIVersion:             rt.APIMarker(),
	}, nil
}

func (c *Collector) selfProcess(ctx context.Context, pid int32) (ProcessStat, error) {
	pids, err := c.processes.Pids(ctx)
	if err != nil {
		return ProcessStat{}, unavailable("process table", err)
	}
	if !slices.Contains(pids, pid) {
		return ProcessStat{}, fmt.Errorf("pid %d: %w", pid, ErrProcessNotFound)
	}

	stat, err := c.processes.Process(ctx, pid)
	switch {
	case errors.Is(err, ErrProcessNotFound):
		return ProcessStat{}, fmt.Errorf("pid %d: %w", pid, err)
	case err != nil:
		return ProcessStat{}, unavailable(fmt.Sprintf("process %d", pid), err)
	}
	return stat, nil
}

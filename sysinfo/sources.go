package sysinfo

import (
	"context"
	"errors"
	"net"
	"os"
	"os/user"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// MemorySource reports physical memory accounting.
type MemorySource interface {
	VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error)
}

// Resolver provides the short hostname and the name lookups used to
// expand it into a fully-qualified domain name.
type Resolver interface {
	Hostname() (string, error)
	LookupHost(ctx context.Context, host string) ([]string, error)
	LookupAddr(ctx context.Context, addr string) ([]string, error)
}

// Uname mirrors the fields of uname(2) that the OS collector reads.
type Uname struct {
	Sysname string
	Release string
	Version string
	Machine string
}

type KernelSource interface {
	Uname(ctx context.Context) (Uname, error)
}

type CPUSource interface {
	Info(ctx context.Context) ([]cpu.InfoStat, error)
	// Times returns CPU times; with percpu false a single combined entry.
	Times(ctx context.Context, percpu bool) ([]cpu.TimesStat, error)
}

// Volume is one mounted filesystem as enumerated by the OS.
type Volume struct {
	Device     string
	Mountpoint string
	Filesystem string
	// Fixed is false for removable media, network shares and optical drives.
	Fixed bool
}

// VolumeSource enumerates volumes and measures them by mountpoint.
type VolumeSource interface {
	Volumes(ctx context.Context) ([]Volume, error)
	Usage(ctx context.Context, mountpoint string) (UsageFigures, error)
}

type UserSource interface {
	Current() (string, error)
}

// ProcessStat is the process-table record read for one PID.
type ProcessStat struct {
	PID     int32
	RSS     uint64
	Threads int32
}

// ProcessTable exposes the OS process table.
type ProcessTable interface {
	Pids(ctx context.Context) ([]int32, error)
	Process(ctx context.Context, pid int32) (ProcessStat, error)
}

type psMemory struct{}

func (psMemory) VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return mem.VirtualMemoryWithContext(ctx)
}

type psCPU struct{}

func (psCPU) Info(ctx context.Context) ([]cpu.InfoStat, error) {
	return cpu.InfoWithContext(ctx)
}

func (psCPU) Times(ctx context.Context, percpu bool) ([]cpu.TimesStat, error) {
	return cpu.TimesWithContext(ctx, percpu)
}

type psProcessTable struct{}

func (psProcessTable) Pids(ctx context.Context) ([]int32, error) {
	return process.PidsWithContext(ctx)
}

func (psProcessTable) Process(ctx context.Context, pid int32) (ProcessStat, error) {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		if errors.Is(err, process.ErrorProcessNotRunning) {
			return ProcessStat{}, ErrProcessNotFound
		}
		return ProcessStat{}, err
	}

	mi, err := p.MemoryInfoWithContext(ctx)
	if err != nil {
		return ProcessStat{}, err
	}
	threads, err := p.NumThreadsWithContext(ctx)
	if err != nil {
		return ProcessStat{}, err
	}

	return ProcessStat{PID: pid, RSS: mi.RSS, Threads: threads}, nil
}

type netResolver struct {
	r *net.Resolver
}

func (netResolver) Hostname() (string, error) {
	return os.Hostname()
}

func (n netResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	return n.r.LookupHost(ctx, host)
}

func (n netResolver) LookupAddr(ctx context.Context, addr string) ([]string, error) {
	return n.r.LookupAddr(ctx, addr)
}

// loginEnv is the order in which login names are taken from the
// environment when the user database cannot resolve the current uid.
var loginEnv = []string{"LOGNAME", "USER", "LNAME", "USERNAME"}

type osUser struct {
	lookupEnv func(string) (string, bool)
}

func (u osUser) Current() (string, error) {
	cur, err := user.Current()
	if err == nil && cur.Username != "" {
		return cur.Username, nil
	}

	lookup := u.lookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, key := range loginEnv {
		if name, ok := lookup(key); ok && name != "" {
			return name, nil
		}
	}

	if err == nil {
		err = errors.New("empty username")
	}
	return "", err
}

package sysinfo

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

type fakeMemory struct {
	stat *mem.VirtualMemoryStat
	err  error
}

func (f fakeMemory) VirtualMemory(context.Context) (*mem.VirtualMemoryStat, error) {
	return f.stat, f.err
}

type fakeResolver struct {
	hostname    string
	hostnameErr error
	hosts       map[string][]string
	addrs       map[string][]string
}

func (f fakeResolver) Hostname() (string, error) {
	return f.hostname, f.hostnameErr
}

func (f fakeResolver) LookupHost(_ context.Context, host string) ([]string, error) {
	if a, ok := f.hosts[host]; ok {
		return a, nil
	}
	return nil, errors.New("no such host")
}

func (f fakeResolver) LookupAddr(_ context.Context, addr string) ([]string, error) {
	if n, ok := f.addrs[addr]; ok {
		return n, nil
	}
	return nil, errors.New("no PTR record")
}

type fakeKernel struct {
	uname Uname
	err   error
}

func (f fakeKernel) Uname(context.Context) (Uname, error) {
	return f.uname, f.err
}

type fakeCPU struct {
	info     []cpu.InfoStat
	infoErr  error
	times    []cpu.TimesStat
	timesErr error
}

func (f fakeCPU) Info(context.Context) ([]cpu.InfoStat, error) {
	return f.info, f.infoErr
}

func (f fakeCPU) Times(context.Context, bool) ([]cpu.TimesStat, error) {
	return f.times, f.timesErr
}

type fakeVolumes struct {
	volumes  []Volume
	err      error
	usage    map[string]UsageFigures
	usageErr map[string]error

	mu       sync.Mutex
	measured []string
}

func (f *fakeVolumes) Volumes(context.Context) ([]Volume, error) {
	return f.volumes, f.err
}

func (f *fakeVolumes) Usage(_ context.Context, mountpoint string) (UsageFigures, error) {
	f.mu.Lock()
	f.measured = append(f.measured, mountpoint)
	f.mu.Unlock()

	if err := f.usageErr[mountpoint]; err != nil {
		return UsageFigures{}, err
	}
	u, ok := f.usage[mountpoint]
	if !ok {
		return UsageFigures{}, errors.New("no such file or directory")
	}
	return u, nil
}

type fakeUser struct {
	name string
	err  error
}

func (f fakeUser) Current() (string, error) {
	return f.name, f.err
}

type fakeProcesses struct {
	pids    []int32
	pidsErr error
	stat    ProcessStat
	statErr error
}

func (f fakeProcesses) Pids(context.Context) ([]int32, error) {
	return f.pids, f.pidsErr
}

func (f fakeProcesses) Process(_ context.Context, pid int32) (ProcessStat, error) {
	if f.statErr != nil {
		return ProcessStat{}, f.statErr
	}
	s := f.stat
	s.PID = pid
	return s, nil
}

type fakeRuntime struct{}

func (fakeRuntime) BitWidth() int           { return 64 }
func (fakeRuntime) ThreadCount() int        { return 7 }
func (fakeRuntime) LiveObjectCount() uint64 { return 12345 }
func (fakeRuntime) RecursionLimit() int     { return 1 << 30 }
func (fakeRuntime) ByteOrder() string       { return "little" }
func (fakeRuntime) Version() Version        { return Version{Major: 1, Minor: 20} }
func (fakeRuntime) APIMarker() int          { return 1 }

func selfPid() int32 {
	return int32(os.Getpid())
}

// fakeHost returns options describing a small, healthy simulated machine.
func fakeHost() (*fakeVolumes, []Option) {
	vols := &fakeVolumes{
		volumes: []Volume{
			{Device: "/dev/nvme0n1p2", Mountpoint: "/", Filesystem: "ext4", Fixed: true},
			{Device: "/dev/sdb1", Mountpoint: "/media/usb", Filesystem: "vfat", Fixed: false},
			{Device: "/dev/nvme0n1p1", Mountpoint: "/boot/efi", Filesystem: "vfat", Fixed: true},
		},
		usage: map[string]UsageFigures{
			"/":          {Total: 500 << 30, Used: 200 << 30, Free: 300 << 30, Percent: 40},
			"/media/usb": {Total: 32 << 30, Used: 1 << 30, Free: 31 << 30, Percent: 3.1},
			"/boot/efi":  {Total: 512 << 20, Used: 6 << 20, Free: 506 << 20, Percent: 1.2},
		},
	}

	return vols, []Option{
		WithMemorySource(fakeMemory{stat: &mem.VirtualMemoryStat{Total: 16 << 30, Used: 6 << 30, Available: 10 << 30}}),
		WithResolver(fakeResolver{
			hostname: "build01",
			hosts:    map[string][]string{"build01": {"10.0.0.5"}},
			addrs:    map[string][]string{"10.0.0.5": {"build01.corp.example.com."}},
		}),
		WithKernelSource(fakeKernel{uname: Uname{
			Sysname: "Linux",
			Release: "6.8.0-45-generic",
			Version: "#45-Ubuntu SMP PREEMPT_DYNAMIC",
			Machine: "x86_64",
		}}),
		WithCPUSource(fakeCPU{
			info:  []cpu.InfoStat{{ModelName: "AMD Ryzen 7 7840U w/ Radeon 780M Graphics"}},
			times: []cpu.TimesStat{{CPU: "cpu-total", User: 1200.5, System: 300.25, Idle: 90000}},
		}),
		WithVolumeSource(vols),
		WithUserSource(fakeUser{name: "ops"}),
		WithProcessTable(fakeProcesses{
			pids: []int32{1, 42, selfPid()},
			stat: ProcessStat{RSS: 24 << 20, Threads: 9},
		}),
		WithRuntime(fakeRuntime{}),
	}
}

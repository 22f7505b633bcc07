package sysinfo

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestCollectSimulatedHost(t *testing.T) {
	_, opts := fakeHost()
	c := New(append(opts, WithLogger(zaptest.NewLogger(t)))...)

	snap, err := c.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, MemoryInfo{Total: 16 << 30, Used: 6 << 30, Free: 10 << 30}, snap.Memory)
	assert.Equal(t, "build01.corp.example.com", snap.Network.Hostname)

	require.NotNil(t, snap.OperatingSystem.BitWidth)
	assert.Equal(t, 64, *snap.OperatingSystem.BitWidth)
	assert.Equal(t, "Linux", snap.OperatingSystem.Name)
	assert.Equal(t, "6.8.0-45-generic", snap.OperatingSystem.KernelVersion)
	assert.Equal(t, "#45-Ubuntu SMP PREEMPT_DYNAMIC", snap.OperatingSystem.KernelRelease)

	assert.Equal(t, "AMD Ryzen 7 7840U w/ Radeon 780M Graphics", snap.Processor.Name)
	assert.Equal(t, ProcessorTimes{User: 1200.5, System: 300.25, Idle: 90000}, snap.Processor.Times)

	assert.Equal(t, "ops", snap.CurrentUser.Username)

	assert.Equal(t, InterpreterInfo{
		BitWidth:               64,
		RecursionLimit:         1 << 30,
		UsedMemory:             24 << 20,
		TotalObjects:           12345,
		RuntimeThreads:         7,
		OperatingSystemThreads: 9,
		Version:                Version{Major: 1, Minor: 20},
		ByteOrder:              "little",
		APIVersion:             1,
	}, snap.Interpreter)
}

func TestSnapshotMapHasExactlyTheCategories(t *testing.T) {
	_, opts := fakeHost()
	snap, err := New(opts...).Collect(context.Background())
	require.NoError(t, err)

	m, err := snap.Map()
	require.NoError(t, err)

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	want := append([]string(nil), Categories...)
	sort.Strings(keys)
	sort.Strings(want)
	assert.Equal(t, want, keys)

	interp := m[CategoryInterpreter].(map[string]any)
	assert.Equal(t, 1.2, interp["version"])
	assert.Contains(t, interp, "runtime_threads")
	assert.Contains(t, interp, "operating_system_threads")
}

func TestStorageKeepsOnlyFixedVolumes(t *testing.T) {
	vols, opts := fakeHost()
	c := New(opts...)

	got, err := c.Storage(context.Background())
	require.NoError(t, err)

	require.Len(t, got.Partitions, 2)
	assert.Equal(t, "/", got.Partitions[0].Mountpoint)
	assert.Equal(t, "/boot/efi", got.Partitions[1].Mountpoint)
	assert.Equal(t, "/dev/nvme0n1p2", got.Partitions[0].Device)
	assert.Equal(t, "ext4", got.Partitions[0].Filesystem)
	assert.Equal(t, 40.0, got.Partitions[0].Size.Percent)

	assert.NotContains(t, vols.measured, "/media/usb", "removable volumes must not be measured")

	var sum uint64
	for _, p := range got.Partitions {
		sum += p.Size.Total
	}
	assert.Equal(t, sum, got.Total)
	assert.Equal(t, uint64(500<<30+512<<20), got.Total)
}

func TestStorageTotalDoesNotOverflow32Bits(t *testing.T) {
	vols := &fakeVolumes{
		volumes: []Volume{
			{Device: "/dev/sda1", Mountpoint: "/a", Fixed: true},
			{Device: "/dev/sdb1", Mountpoint: "/b", Fixed: true},
		},
		usage: map[string]UsageFigures{
			"/a": {Total: 8 << 40},
			"/b": {Total: 4 << 40},
		},
	}

	got, err := New(WithVolumeSource(vols)).Storage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(12<<40), got.Total)
}

func TestStorageWithoutFixedVolumes(t *testing.T) {
	vols := &fakeVolumes{volumes: []Volume{
		{Device: "server:/export", Mountpoint: "/mnt/nfs", Filesystem: "nfs4", Fixed: false},
	}}

	got, err := New(WithVolumeSource(vols)).Storage(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got.Partitions)
	assert.Empty(t, got.Partitions)
	assert.Zero(t, got.Total)

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"partitions":[],"total":0}`, string(b))
}

func TestStorageFailsWhenVolumeVanishes(t *testing.T) {
	vols, opts := fakeHost()
	vols.usageErr = map[string]error{"/boot/efi": errors.New("no such file or directory")}

	snap, err := New(opts...).Collect(context.Background())
	require.Error(t, err)
	assert.Nil(t, snap)

	var ce *CategoryError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, CategoryStorage, ce.Category)
	assert.ErrorIs(t, err, ErrResourceUnavailable)
	assert.Contains(t, err.Error(), "/boot/efi")
	assert.Contains(t, err.Error(), "storage: ")
}

func TestInterpreterFailsWhenOwnPidMissing(t *testing.T) {
	_, opts := fakeHost()
	opts = append(opts, WithProcessTable(fakeProcesses{pids: []int32{1, 2, 3}}))

	snap, err := New(opts...).Collect(context.Background())
	require.Error(t, err)
	assert.Nil(t, snap, "no partial snapshot may be returned")

	var ce *CategoryError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, CategoryInterpreter, ce.Category)
	assert.ErrorIs(t, err, ErrProcessNotFound)
	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

func TestInterpreterErrors(t *testing.T) {
	tests := []struct {
		name         string
		table        fakeProcesses
		wantNotFound bool
	}{
		{
			name:  "process table unreadable",
			table: fakeProcesses{pidsErr: errors.New("permission denied")},
		},
		{
			name:         "process exited between listing and lookup",
			table:        fakeProcesses{pids: []int32{selfPid()}, statErr: ErrProcessNotFound},
			wantNotFound: true,
		},
		{
			name:  "memory info unreadable",
			table: fakeProcesses{pids: []int32{selfPid()}, statErr: errors.New("open /proc/self/statm: permission denied")},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New(WithProcessTable(tc.table), WithRuntime(fakeRuntime{}))
			_, err := c.Interpreter(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrResourceUnavailable)
			assert.Equal(t, tc.wantNotFound, errors.Is(err, ErrProcessNotFound))
		})
	}
}

func TestMemoryUnavailable(t *testing.T) {
	tests := []struct {
		name string
		src  fakeMemory
	}{
		{"source error", fakeMemory{err: errors.New("open /proc/meminfo: no such file or directory")}},
		{"zero total", fakeMemory{stat: &mem.VirtualMemoryStat{}}},
		{"nil stat", fakeMemory{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(WithMemorySource(tc.src)).Memory(context.Background())
			assert.ErrorIs(t, err, ErrResourceUnavailable)
		})
	}
}

func TestProcessorNameMayBeEmpty(t *testing.T) {
	src := fakeCPU{
		infoErr: errors.New("not implemented yet"),
		times:   []cpu.TimesStat{{CPU: "cpu-total", User: 10, System: 5, Idle: 100}},
	}
	got, err := New(WithCPUSource(src)).Processor(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Name)
	assert.Equal(t, 10.0, got.Times.User)
}

func TestProcessorTimesUnavailable(t *testing.T) {
	for _, src := range []fakeCPU{
		{timesErr: errors.New("open /proc/stat: permission denied")},
		{},
	} {
		_, err := New(WithCPUSource(src)).Processor(context.Background())
		assert.ErrorIs(t, err, ErrResourceUnavailable)
	}
}

func TestCurrentUserUnavailable(t *testing.T) {
	_, opts := fakeHost()
	opts = append(opts, WithUserSource(fakeUser{err: errors.New("user: unknown userid 4242")}))

	_, err := New(opts...).Collect(context.Background())
	var ce *CategoryError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, CategoryCurrentUser, ce.Category)
	assert.ErrorIs(t, err, ErrResourceUnavailable)
	assert.Contains(t, err.Error(), "unknown userid 4242")
}

func TestCollectStopsAtFirstFailureInOrder(t *testing.T) {
	vols, opts := fakeHost()
	opts = append(opts,
		WithMemorySource(fakeMemory{err: errors.New("restricted")}),
		WithKernelSource(fakeKernel{err: errors.New("uname blocked")}),
	)

	_, err := New(opts...).Collect(context.Background())
	var ce *CategoryError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, CategoryMemory, ce.Category)
	assert.Empty(t, vols.measured, "collectors after the failing one must not run")
}

func TestConcurrentCollectMatchesSequential(t *testing.T) {
	_, opts := fakeHost()
	seq, err := New(opts...).Collect(context.Background())
	require.NoError(t, err)

	_, opts = fakeHost()
	par, err := New(append(opts, WithConcurrency(true))...).Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, seq, par)
}

func TestConcurrentCollectReportsEarliestCategory(t *testing.T) {
	_, opts := fakeHost()
	opts = append(opts,
		WithConcurrency(true),
		WithCPUSource(fakeCPU{timesErr: errors.New("counters gone")}),
		WithKernelSource(fakeKernel{err: errors.New("uname blocked")}),
	)

	for i := 0; i < 20; i++ {
		_, err := New(opts...).Collect(context.Background())
		var ce *CategoryError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, CategoryOperatingSystem, ce.Category)
	}
}

func TestCategoryErrorMessage(t *testing.T) {
	err := &CategoryError{Category: CategoryStorage, Err: unavailable("usage of /data", errors.New("input/output error"))}
	assert.Equal(t, "storage: usage of /data: resource unavailable: input/output error", err.Error())
}

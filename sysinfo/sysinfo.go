// Package sysinfo provides one-shot host introspection. It gathers memory,
// network, operating system, runtime, user, storage and processor facts
// into a single immutable Snapshot.
//
// Each category is read by an independent collector backed by a narrow
// platform source, so any source can be swapped out (for tests, or for a
// restricted environment) through the options accepted by New.
package sysinfo

import (
	"context"
	"encoding/json"
)

// ANSI color codes for terminal output formatting
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
)

// Snapshot category names, in the order Collect gathers them.
const (
	CategoryMemory          = "memory"
	CategoryNetwork         = "network"
	CategoryOperatingSystem = "operating_system"
	CategoryInterpreter     = "interpreter"
	CategoryCurrentUser     = "current_user"
	CategoryStorage         = "storage"
	CategoryProcessor       = "processor"
)

// Categories lists every top-level Snapshot key in aggregation order.
var Categories = []string{
	CategoryMemory,
	CategoryNetwork,
	CategoryOperatingSystem,
	CategoryInterpreter,
	CategoryCurrentUser,
	CategoryStorage,
	CategoryProcessor,
}

// Snapshot is the result of a single SystemInfo call. Every category is
// always populated; a failing category fails the whole call instead.
type Snapshot struct {
	Memory          MemoryInfo      `json:"memory" yaml:"memory"`
	Network         NetworkInfo     `json:"network" yaml:"network"`
	OperatingSystem OSInfo          `json:"operating_system" yaml:"operating_system"`
	Interpreter     InterpreterInfo `json:"interpreter" yaml:"interpreter"`
	CurrentUser     UserInfo        `json:"current_user" yaml:"current_user"`
	Storage         StorageSummary  `json:"storage" yaml:"storage"`
	Processor       ProcessorInfo   `json:"processor" yaml:"processor"`
}

// MemoryInfo holds physical memory figures in bytes.
type MemoryInfo struct {
	Total uint64 `json:"total" yaml:"total"`
	Used  uint64 `json:"used" yaml:"used"`
	// Free is the memory available to new allocations without swapping.
	Free uint64 `json:"free" yaml:"free"`
}

type NetworkInfo struct {
	Hostname string `json:"hostname" yaml:"hostname"`
}

// OSInfo describes the operating system family and kernel.
type OSInfo struct {
	Name string `json:"name" yaml:"name"`
	// BitWidth is nil when the machine identifier is not recognized.
	BitWidth *int `json:"bit_width" yaml:"bit_width"`
	// KernelVersion carries the kernel release string (uname -r).
	KernelVersion string `json:"kernel_version" yaml:"kernel_version"`
	// KernelRelease carries the kernel build string (uname -v).
	KernelRelease string `json:"kernel_release" yaml:"kernel_release"`
	Machine       string `json:"machine" yaml:"machine"`
}

type ProcessorInfo struct {
	// Name may be empty on platforms that do not expose a model string.
	Name  string         `json:"name" yaml:"name"`
	Times ProcessorTimes `json:"times" yaml:"times"`
}

// ProcessorTimes are cumulative CPU seconds across all cores since an
// OS-defined epoch, usually boot.
type ProcessorTimes struct {
	User   float64 `json:"user" yaml:"user"`
	System float64 `json:"system" yaml:"system"`
	Idle   float64 `json:"idle" yaml:"idle"`
}

type PartitionInfo struct {
	Device     string       `json:"device" yaml:"device"`
	Mountpoint string       `json:"mountpoint" yaml:"mountpoint"`
	Filesystem string       `json:"filesystem" yaml:"filesystem"`
	Size       UsageFigures `json:"size" yaml:"size"`
}

// UsageFigures are byte counts for one volume. Percent is taken from the
// OS layer as reported and is not recomputed from Used and Total.
type UsageFigures struct {
	Total   uint64  `json:"total" yaml:"total"`
	Used    uint64  `json:"used" yaml:"used"`
	Free    uint64  `json:"free" yaml:"free"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// StorageSummary lists fixed partitions in enumeration order. Total is the
// sum of every partition's Size.Total.
type StorageSummary struct {
	Partitions []PartitionInfo `json:"partitions" yaml:"partitions"`
	Total      uint64          `json:"total" yaml:"total"`
}

type UserInfo struct {
	Username string `json:"username" yaml:"username"`
}

// InterpreterInfo describes the running process and the Go runtime hosting it.
type InterpreterInfo struct {
	BitWidth int `json:"bit_width" yaml:"bit_width"`
	// RecursionLimit is the maximum goroutine stack size in bytes.
	RecursionLimit int    `json:"recursion_limit" yaml:"recursion_limit"`
	UsedMemory     uint64 `json:"used_memory" yaml:"used_memory"`
	TotalObjects   uint64 `json:"total_objects" yaml:"total_objects"`
	// RuntimeThreads counts goroutines; OperatingSystemThreads counts the
	// kernel threads of this process. The two are reported separately.
	RuntimeThreads         int     `json:"runtime_threads" yaml:"runtime_threads"`
	OperatingSystemThreads int     `json:"operating_system_threads" yaml:"operating_system_threads"`
	Version                Version `json:"version" yaml:"version"`
	ByteOrder              string  `json:"byte_order" yaml:"byte_order"`
	APIVersion             int     `json:"api_version" yaml:"api_version"`
}

// Map returns the snapshot as a generic key/value tree keyed by category.
func (s *Snapshot) Map() (map[string]any, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// SystemInfo collects a Snapshot of the local host using the default
// platform sources. It is the main entry point of the package.
//
// No deadline is imposed; callers needing bounded latency should pass a
// context with a timeout, since hostname resolution may hit the network.
func SystemInfo(ctx context.Context) (*Snapshot, error) {
	return New().Collect(ctx)
}

package sysinfo

import (
	"math"
	"regexp"
	"runtime"
	"runtime/debug"
	"runtime/metrics"
	"strconv"
	"sync"

	"golang.org/x/sys/cpu"
	"gopkg.in/yaml.v3"
)

// RuntimeIntrospector exposes the facts the Go runtime knows about itself.
// None of its methods can fail.
type RuntimeIntrospector interface {
	BitWidth() int
	// ThreadCount returns the number of runtime-scheduled threads of
	// execution, which for Go are goroutines.
	ThreadCount() int
	LiveObjectCount() uint64
	RecursionLimit() int
	ByteOrder() string
	Version() Version
	APIMarker() int
}

// Version is a major.minor runtime version.
type Version struct {
	Major int
	Minor int
}

func (v Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// MarshalJSON encodes v as a bare number, keeping the minor digits intact
// so that 1.20 is not printed as 1.2.
func (v Version) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v Version) MarshalYAML() (interface{}, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: v.String()}, nil
}

var goVersionRe = regexp.MustCompile(`go(\d+)\.(\d+)`)

// ParseGoVersion extracts major and minor from a toolchain version such as
// "go1.22.4", "go1.23rc1" or "devel go1.24-abcdef". It returns the zero
// Version for strings that carry no release number.
func ParseGoVersion(s string) Version {
	m := goVersionRe.FindStringSubmatch(s)
	if m == nil {
		return Version{}
	}
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	return Version{Major: major, Minor: minor}
}

const heapObjectsMetric = "/gc/heap/objects:objects"

// maxStackMu serializes the read-and-restore of the process-wide max
// stack setting.
var maxStackMu sync.Mutex

type goRuntime struct{}

func (goRuntime) BitWidth() int {
	return strconv.IntSize
}

func (goRuntime) ThreadCount() int {
	return runtime.NumGoroutine()
}

func (goRuntime) LiveObjectCount() uint64 {
	sample := []metrics.Sample{{Name: heapObjectsMetric}}
	metrics.Read(sample)
	if sample[0].Value.Kind() == metrics.KindUint64 {
		return sample[0].Value.Uint64()
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.HeapObjects
}

func (goRuntime) RecursionLimit() int {
	maxStackMu.Lock()
	defer maxStackMu.Unlock()

	// SetMaxStack is the only accessor. The interim value is the largest
	// one so that no goroutine can overflow while the old limit is read.
	prev := debug.SetMaxStack(math.MaxInt32)
	debug.SetMaxStack(prev)
	return prev
}

func (goRuntime) ByteOrder() string {
	if cpu.IsBigEndian {
		return "big"
	}
	return "little"
}

func (goRuntime) Version() Version {
	if v := ParseGoVersion(runtime.Version()); v.Major > 0 {
		return v
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		return ParseGoVersion(bi.GoVersion)
	}
	return Version{}
}

// APIMarker returns the major version of the Go compatibility promise the
// runtime implements.
func (r goRuntime) APIMarker() int {
	if v := r.Version(); v.Major > 0 {
		return v.Major
	}
	return 1
}

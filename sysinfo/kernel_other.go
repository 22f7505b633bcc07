//go:build !unix && !windows

package sysinfo

import (
	"context"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// goosKernel serves platforms without uname, such as plan9 and wasip1.
type goosKernel struct{}

func newKernelSource() KernelSource {
	return goosKernel{}
}

func (goosKernel) Uname(ctx context.Context) (Uname, error) {
	release, err := host.KernelVersionWithContext(ctx)
	if err != nil {
		release = ""
	}
	return Uname{
		Sysname: strings.ToUpper(runtime.GOOS[:1]) + runtime.GOOS[1:],
		Release: release,
		Machine: runtime.GOARCH,
	}, nil
}

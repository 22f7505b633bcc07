//go:build windows

package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shirou/gopsutil/v4/host"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

// windowsKernel reads version numbers from RtlGetVersion, which unlike
// GetVersionEx is not subject to manifest-based version lies.
type windowsKernel struct{}

func newKernelSource() KernelSource {
	return windowsKernel{}
}

func (windowsKernel) Uname(ctx context.Context) (Uname, error) {
	v := windows.RtlGetVersion()
	if v == nil || v.MajorVersion == 0 {
		return Uname{}, errors.New("RtlGetVersion returned no version")
	}

	machine, err := host.KernelArch()
	if err != nil {
		return Uname{}, err
	}

	return Uname{
		Sysname: "Windows",
		Release: windowsRelease(v.MajorVersion, v.BuildNumber),
		Version: windowsVersion(v.MajorVersion, v.MinorVersion, v.BuildNumber, updateBuildRevision()),
		Machine: machine,
	}, nil
}

// windowsRelease gives the marketing major version. Windows 11 still
// reports major version 10; it is told apart by build number.
func windowsRelease(major, build uint32) string {
	if major == 10 && build >= 22000 {
		return "11"
	}
	return strconv.FormatUint(uint64(major), 10)
}

func windowsVersion(major, minor, build uint32, ubr uint64) string {
	if ubr > 0 {
		return fmt.Sprintf("%d.%d.%d.%d", major, minor, build, ubr)
	}
	return fmt.Sprintf("%d.%d.%d", major, minor, build)
}

// updateBuildRevision returns the cumulative update revision (UBR), or 0
// when the registry does not carry it.
func updateBuildRevision() uint64 {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return 0
	}
	defer func() { _ = k.Close() }()

	ubr, _, err := k.GetIntegerValue("UBR")
	if err != nil {
		return 0
	}
	return ubr
}

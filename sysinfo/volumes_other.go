//go:build !linux && !windows

package sysinfo

import (
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
)

func newVolumeSource() VolumeSource {
	return psVolumes{fixed: localDevice}
}

// localDevice treats any /dev-backed volume that is not a network or
// optical filesystem as fixed.
func localDevice(p disk.PartitionStat) bool {
	return strings.HasPrefix(p.Device, "/dev/") && !isNonFixedFilesystem(p.Fstype)
}

//go:build windows

package sysinfo

import (
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
	"golang.org/x/sys/windows"
)

func newVolumeSource() VolumeSource {
	return psVolumes{fixed: fixedDrive}
}

// fixedDrive keeps only DRIVE_FIXED volumes; removable, remote, CD-ROM and
// RAM disks are excluded.
func fixedDrive(p disk.PartitionStat) bool {
	root := p.Mountpoint
	if !strings.HasSuffix(root, `\`) {
		root += `\`
	}
	ptr, err := windows.UTF16PtrFromString(root)
	if err != nil {
		return false
	}
	return windows.GetDriveType(ptr) == windows.DRIVE_FIXED
}

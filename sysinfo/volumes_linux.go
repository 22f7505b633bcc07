//go:build linux

package sysinfo

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
)

const sysClassBlock = "/sys/class/block"

func newVolumeSource() VolumeSource {
	s := sysfsBlock{root: sysClassBlock, resolve: filepath.EvalSymlinks}
	return psVolumes{fixed: s.fixed}
}

// sysfsBlock decides removability from the kernel's block device flags.
type sysfsBlock struct {
	root    string
	resolve func(string) (string, error)
}

func (s sysfsBlock) fixed(p disk.PartitionStat) bool {
	if !strings.HasPrefix(p.Device, "/dev/") || isNonFixedFilesystem(p.Fstype) {
		return false
	}

	// /dev/disk/by-uuid/... and /dev/mapper/... are symlinks to the
	// kernel name that sysfs is keyed by.
	dev := p.Device
	if real, err := s.resolve(dev); err == nil {
		dev = real
	}
	return !s.removable(filepath.Base(dev))
}

// removable reports the sysfs removable flag of name. Partitions have no
// flag of their own and inherit the flag of their parent disk. A missing
// flag (device-mapper, md) counts as not removable.
func (s sysfsBlock) removable(name string) bool {
	dir := filepath.Join(s.root, name)
	if flag, ok := readFlag(filepath.Join(dir, "removable")); ok {
		return flag
	}

	real, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return false
	}
	flag, _ := readFlag(filepath.Join(filepath.Dir(real), "removable"))
	return flag
}

func readFlag(path string) (bool, bool) {
	b, err := os.ReadFile(path)
	if err != nil {
		return false, false
	}
	return strings.TrimSpace(string(b)) == "1", true
}

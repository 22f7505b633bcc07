package sysinfo

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
)

// nonFixedFilesystems are network and optical filesystem types. Volumes of
// these types are never counted as fixed storage.
var nonFixedFilesystems = map[string]bool{
	"nfs":        true,
	"nfs4":       true,
	"cifs":       true,
	"smbfs":      true,
	"smb3":       true,
	"sshfs":      true,
	"fuse.sshfs": true,
	"9p":         true,
	"afs":        true,
	"ceph":       true,
	"glusterfs":  true,
	"davfs":      true,
	"webdav":     true,
	"iso9660":    true,
	"udf":        true,
	"cd9660":     true,
	"cddafs":     true,
}

func isNonFixedFilesystem(fstype string) bool {
	return nonFixedFilesystems[strings.ToLower(fstype)]
}

// psVolumes enumerates partitions with gopsutil and classifies each one
// with a platform-specific fixed predicate.
type psVolumes struct {
	fixed func(disk.PartitionStat) bool
}

func (p psVolumes) Volumes(ctx context.Context) ([]Volume, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, err
	}

	volumes := make([]Volume, 0, len(parts))
	for _, part := range parts {
		volumes = append(volumes, Volume{
			Device:     part.Device,
			Mountpoint: part.Mountpoint,
			Filesystem: part.Fstype,
			Fixed:      p.fixed(part),
		})
	}
	return volumes, nil
}

func (psVolumes) Usage(ctx context.Context, mountpoint string) (UsageFigures, error) {
	u, err := disk.UsageWithContext(ctx, mountpoint)
	if err != nil {
		return UsageFigures{}, err
	}
	return UsageFigures{
		Total:   u.Total,
		Used:    u.Used,
		Free:    u.Free,
		Percent: u.UsedPercent,
	}, nil
}

package sysinfo

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Storage reports every fixed partition with its usage and the sum of
// their capacities.
//
// Volumes are listed first and measured afterwards, so a volume unmounted
// in between makes Usage fail. That failure fails the whole category
// rather than dropping the partition from the total.
func (c *Collector) Storage(ctx context.Context) (StorageSummary, error) {
	volumes, err := c.volumes.Volumes(ctx)
	if err != nil {
		return StorageSummary{}, unavailable("partitions", err)
	}

	summary := StorageSummary{Partitions: make([]PartitionInfo, 0, len(volumes))}
	for _, v := range volumes {
		if !v.Fixed {
			c.log.Debug("skipping non-fixed volume", zap.String("device", v.Device), zap.String("mountpoint", v.Mountpoint))
			continue
		}

		size, err := c.volumes.Usage(ctx, v.Mountpoint)
		if err != nil {
			return StorageSummary{}, unavailable(fmt.Sprintf("usage of %s", v.Mountpoint), err)
		}

		summary.Partitions = append(summary.Partitions, PartitionInfo{
			Device:     v.Device,
			Mountpoint: v.Mountpoint,
			Filesystem: v.Filesystem,
			Size:       size,
		})
		summary.Total += size.Total
	}

	return summary, nil
}

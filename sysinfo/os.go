package sysinfo

import "context"

// OperatingSystem reports the OS family, kernel identifiers and the bit
// width of the hardware architecture.
func (c *Collector) OperatingSystem(ctx context.Context) (OSInfo, error) {
	u, err := c.kernel.Uname(ctx)
	if err != nil {
		return OSInfo{}, unavailable("uname", err)
	}

	return OSInfo{
		Name:          u.Sysname,
		BitWidth:      BitWidth(u.Machine),
		KernelVersion: u.Release,
		KernelRelease: u.Version,
		Machine:       u.Machine,
	}, nil
}

package sysinfo

import "context"

// Memory reports total, used and available physical memory.
func (c *Collector) Memory(ctx context.Context) (MemoryInfo, error) {
	vm, err := c.memory.VirtualMemory(ctx)
	if err != nil {
		return MemoryInfo{}, unavailable("virtual memory", err)
	}
	if vm == nil || vm.Total == 0 {
		return MemoryInfo{}, unavailable("virtual memory: no physical memory reported", nil)
	}

	return MemoryInfo{
		Total: vm.Total,
		Used:  vm.Used,
		Free:  vm.Available,
	}, nil
}

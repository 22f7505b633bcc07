package sysinfo

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Processor reports the processor model string and cumulative CPU times
// summed over all cores.
func (c *Collector) Processor(ctx context.Context) (ProcessorInfo, error) {
	times, err := c.cpu.Times(ctx, false)
	if err != nil {
		return ProcessorInfo{}, unavailable("cpu times", err)
	}
	if len(times) == 0 {
		return ProcessorInfo{}, unavailable("cpu times: no counters reported", nil)
	}

	return ProcessorInfo{
		Name: c.processorName(ctx),
		Times: ProcessorTimes{
			User:   times[0].User,
			System: times[0].System,
			Idle:   times[0].Idle,
		},
	}, nil
}

// processorName returns "" when the platform exposes no model string.
func (c *Collector) processorName(ctx context.Context) string {
	infos, err := c.cpu.Info(ctx)
	if err != nil || len(infos) == 0 {
		c.log.Debug("processor name not available", zap.Error(err))
		return ""
	}
	return strings.TrimSpace(infos[0].ModelName)
}

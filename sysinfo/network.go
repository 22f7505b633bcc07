package sysinfo

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Network reports the fully-qualified hostname of the machine.
func (c *Collector) Network(ctx context.Context) (NetworkInfo, error) {
	name, err := c.resolver.Hostname()
	if err != nil {
		return NetworkInfo{}, unavailable("hostname", err)
	}
	return NetworkInfo{Hostname: c.fqdn(ctx, name)}, nil
}

// fqdn expands name through forward then reverse resolution and returns
// the first candidate containing a dot. When none qualifies it falls back
// to the first reverse name, then to name itself. Lookup failures are not
// errors.
func (c *Collector) fqdn(ctx context.Context, name string) string {
	if strings.Contains(name, ".") {
		return strings.TrimSuffix(name, ".")
	}

	addrs, err := c.resolver.LookupHost(ctx, name)
	if err != nil {
		c.log.Debug("hostname lookup failed, using short name", zap.String("hostname", name), zap.Error(err))
		return name
	}

	var first string
	for _, addr := range addrs {
		names, err := c.resolver.LookupAddr(ctx, addr)
		if err != nil {
			continue
		}
		for _, n := range names {
			n = strings.TrimSuffix(n, ".")
			if n == "" {
				continue
			}
			if strings.Contains(n, ".") {
				return n
			}
			if first == "" {
				first = n
			}
		}
	}

	if first != "" {
		return first
	}
	return name
}

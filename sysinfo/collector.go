package sysinfo

import (
	"context"
	"net"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Collector gathers snapshots from a fixed set of platform sources. It
// holds no mutable state and is safe for concurrent use.
type Collector struct {
	log        *zap.Logger
	concurrent bool

	memory    MemorySource
	resolver  Resolver
	kernel    KernelSource
	cpu       CPUSource
	volumes   VolumeSource
	users     UserSource
	processes ProcessTable
	runtime   RuntimeIntrospector
}

type Option func(*Collector)

// WithLogger sets the logger used for per-category debug output.
func WithLogger(l *zap.Logger) Option {
	return func(c *Collector) {
		if l != nil {
			c.log = l
		}
	}
}

// WithConcurrency runs the collectors in parallel when enabled. Results
// are identical to the sequential mode.
func WithConcurrency(enabled bool) Option {
	return func(c *Collector) { c.concurrent = enabled }
}

func WithMemorySource(s MemorySource) Option {
	return func(c *Collector) { c.memory = s }
}

func WithResolver(r Resolver) Option {
	return func(c *Collector) { c.resolver = r }
}

func WithKernelSource(s KernelSource) Option {
	return func(c *Collector) { c.kernel = s }
}

func WithCPUSource(s CPUSource) Option {
	return func(c *Collector) { c.cpu = s }
}

func WithVolumeSource(s VolumeSource) Option {
	return func(c *Collector) { c.volumes = s }
}

func WithUserSource(s UserSource) Option {
	return func(c *Collector) { c.users = s }
}

func WithProcessTable(t ProcessTable) Option {
	return func(c *Collector) { c.processes = t }
}

func WithRuntime(r RuntimeIntrospector) Option {
	return func(c *Collector) { c.runtime = r }
}

// New returns a Collector reading from the local host. Options replace
// individual sources.
func New(opts ...Option) *Collector {
	c := &Collector{
		log:       zap.NewNop(),
		memory:    psMemory{},
		resolver:  netResolver{r: net.DefaultResolver},
		kernel:    newKernelSource(),
		cpu:       psCPU{},
		volumes:   newVolumeSource(),
		users:     osUser{},
		processes: psProcessTable{},
		runtime:   goRuntime{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type step struct {
	category string
	run      func(ctx context.Context, s *Snapshot) error
}

func (c *Collector) steps() []step {
	return []step{
		{CategoryMemory, func(ctx context.Context, s *Snapshot) (err error) {
			s.Memory, err = c.Memory(ctx)
			return
		}},
		{CategoryNetwork, func(ctx context.Context, s *Snapshot) (err error) {
			s.Network, err = c.Network(ctx)
			return
		}},
		{CategoryOperatingSystem, func(ctx context.Context, s *Snapshot) (err error) {
			s.OperatingSystem, err = c.OperatingSystem(ctx)
			return
		}},
		{CategoryInterpreter, func(ctx context.Context, s *Snapshot) (err error) {
			s.Interpreter, err = c.Interpreter(ctx)
			return
		}},
		{CategoryCurrentUser, func(ctx context.Context, s *Snapshot) (err error) {
			s.CurrentUser, err = c.CurrentUser(ctx)
			return
		}},
		{CategoryStorage, func(ctx context.Context, s *Snapshot) (err error) {
			s.Storage, err = c.Storage(ctx)
			return
		}},
		{CategoryProcessor, func(ctx context.Context, s *Snapshot) (err error) {
			s.Processor, err = c.Processor(ctx)
			return
		}},
	}
}

// Collect runs every collector and assembles a Snapshot. A failing
// collector fails the whole call with a *CategoryError; no partial
// snapshot is ever returned.
func (c *Collector) Collect(ctx context.Context) (*Snapshot, error) {
	if c.concurrent {
		return c.collectConcurrent(ctx)
	}

	s := &Snapshot{}
	for _, st := range c.steps() {
		if err := c.runStep(ctx, st, s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (c *Collector) collectConcurrent(ctx context.Context) (*Snapshot, error) {
	steps := c.steps()
	errs := make([]error, len(steps))
	s := &Snapshot{}

	// Not WithContext: one failure must not cancel the other collectors.
	var g errgroup.Group
	for i, st := range steps {
		i, st := i, st
		g.Go(func() error {
			errs[i] = c.runStep(ctx, st, s)
			return errs[i]
		})
	}
	if g.Wait() == nil {
		return s, nil
	}

	// Earliest failing category wins, independent of scheduling.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (c *Collector) runStep(ctx context.Context, st step, s *Snapshot) error {
	start := time.Now()
	if err := st.run(ctx, s); err != nil {
		c.log.Warn("collector failed", zap.String("category", st.category), zap.Error(err))
		return &CategoryError{Category: st.category, Err: err}
	}
	c.log.Debug("collected", zap.String("category", st.category), zap.Duration("elapsed", time.Since(start)))
	return nil
}

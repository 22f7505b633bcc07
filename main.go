// Package main provides the sysfetch command-line tool. It takes a single
// snapshot of the host and prints it next to an ASCII logo for the OS
// family, or as JSON or YAML for scripts and support bundles.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/peterbourgon/ff/v2"
	"github.com/peterbourgon/ff/v2/ffcli"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"sysfetch/ascii"
	"sysfetch/sysinfo"
)

var version = "dev"

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type options struct {
	format   string
	compact  bool
	gap      int
	parallel bool
	timeout  time.Duration
	logLevel string
	logFile  string
	noColor  bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "sysfetch: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 1 && (args[0] == "-V" || args[0] == "--version" || args[0] == "-v") {
		args = []string{"version"}
	}

	cmd := newRootCmd(stdout)
	if err := cmd.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	return cmd.Run(ctx)
}

func newRootCmd(stdout io.Writer) *ffcli.Command {
	var opts options

	fs := flag.NewFlagSet("sysfetch", flag.ContinueOnError)
	fs.StringVar(&opts.format, "format", formatText, "output format: text, json or yaml")
	fs.BoolVar(&opts.compact, "compact", false, "use the compact ASCII logo")
	fs.IntVar(&opts.gap, "gap", 4, "number of spaces between logo and info")
	fs.BoolVar(&opts.parallel, "parallel", false, "run collectors concurrently")
	fs.DurationVar(&opts.timeout, "timeout", 0, "deadline for the whole collection, 0 for none")
	fs.StringVar(&opts.logLevel, "loglevel", WarningLevelStr, "set log level: debug, info, warning or error")
	fs.StringVar(&opts.logFile, "logfile", "", "also write logs to this file, rotated")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable ANSI colors in text output")

	versionCmd := &ffcli.Command{
		Name:       "version",
		ShortUsage: "sysfetch version",
		ShortHelp:  "Show sysfetch version",
		Exec: func(_ context.Context, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("too many arguments: %q", args)
			}
			fmt.Fprintln(stdout, version)
			return nil
		},
	}

	return &ffcli.Command{
		Name:       "sysfetch",
		ShortUsage: "sysfetch [flags] | sysfetch version",
		ShortHelp:  "print a one-shot snapshot of host and runtime information",
		LongHelp: strings.TrimSpace(`
Every flag may also be set with a SYSFETCH_ prefixed environment
variable, e.g. SYSFETCH_FORMAT=json.
`),
		FlagSet:     fs,
		Options:     []ff.Option{ff.WithEnvVarPrefix("SYSFETCH")},
		Subcommands: []*ffcli.Command{versionCmd},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected arguments: %q", args)
			}
			return execFetch(ctx, opts, stdout)
		},
	}
}

func execFetch(ctx context.Context, opts options, stdout io.Writer) error {
	switch opts.format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	log, err := newLogger(opts.logLevel, opts.logFile)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	collector := sysinfo.New(
		sysinfo.WithLogger(log),
		sysinfo.WithConcurrency(opts.parallel),
	)

	start := time.Now()
	snap, err := collector.Collect(ctx)
	if err != nil {
		return err
	}
	log.Info("snapshot collected", zap.Duration("elapsed", time.Since(start)))

	return render(stdout, snap, opts)
}

func render(w io.Writer, snap *sysinfo.Snapshot, opts options) error {
	switch opts.format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	}

	logo := ascii.GetLogo(snap.OperatingSystem.Name)
	if opts.compact {
		logo = ascii.GetCompactLogo(snap.OperatingSystem.Name)
	}
	d := display{w: w, gap: opts.gap, color: !opts.noColor}
	return d.render(logo, snap)
}

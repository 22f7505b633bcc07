package main

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"sysfetch/sysinfo"
)

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// maxValueWidth caps long values such as kernel build strings.
const maxValueWidth = 60

// display renders a snapshot as an ASCII logo with aligned info lines
// beside it.
type display struct {
	w     io.Writer
	gap   int
	color bool
}

func (d display) render(logo []string, snap *sysinfo.Snapshot) error {
	if !d.color {
		stripped := make([]string, len(logo))
		for i, line := range logo {
			stripped[i] = ansiRegex.ReplaceAllString(line, "")
		}
		logo = stripped
	}

	infoLines := d.infoLines(snap)

	// Top-align logo and info so the art stays anchored when the number
	// of info lines changes.
	logoWidth := 0
	for _, line := range logo {
		if w := getVisibleWidth(line); w > logoWidth {
			logoWidth = w
		}
	}

	maxLines := len(logo)
	if len(infoLines) > maxLines {
		maxLines = len(infoLines)
	}

	gap := strings.Repeat(" ", max(d.gap, 0))
	for i := 0; i < maxLines; i++ {
		var logoLine, infoLine string

		if i < len(logo) {
			logoLine = logo[i] + strings.Repeat(" ", logoWidth-getVisibleWidth(logo[i]))
		} else {
			logoLine = strings.Repeat(" ", logoWidth)
		}
		if i < len(infoLines) {
			infoLine = infoLines[i]
		}

		line := strings.TrimRight(logoLine+gap+infoLine, " ")
		if _, err := fmt.Fprintln(d.w, line); err != nil {
			return err
		}
	}
	return nil
}

func (d display) infoLines(snap *sysinfo.Snapshot) []string {
	user := d.colorize(snap.CurrentUser.Username, sysinfo.ColorCyan)
	host := d.colorize(snap.Network.Hostname, sysinfo.ColorCyan)
	sepLen := getVisibleWidth(user) + getVisibleWidth(host) + 1

	osInfo := snap.OperatingSystem
	arch := osInfo.Machine
	if osInfo.BitWidth != nil {
		arch = fmt.Sprintf("%s, %d-bit", arch, *osInfo.BitWidth)
	}

	cpuName := snap.Processor.Name
	if cpuName == "" {
		cpuName = "Unknown"
	}
	t := snap.Processor.Times

	mem := snap.Memory
	rt := snap.Interpreter

	lines := []string{
		"",
		fmt.Sprintf("%s@%s", user, host),
		strings.Repeat("-", sepLen),
		d.field("OS", fmt.Sprintf("%s %s (%s)", osInfo.Name, osInfo.KernelVersion, arch)),
		d.field("Kernel", sysinfo.TruncateString(osInfo.KernelRelease, maxValueWidth)),
		d.field("CPU", sysinfo.TruncateString(cpuName, maxValueWidth)),
		d.field("CPU Time", fmt.Sprintf("user %s, system %s, idle %s",
			sysinfo.FormatSeconds(t.User), sysinfo.FormatSeconds(t.System), sysinfo.FormatSeconds(t.Idle))),
		d.field("Memory", fmt.Sprintf("%s / %s (%s free)",
			sysinfo.FormatBytes(mem.Used), sysinfo.FormatBytes(mem.Total), sysinfo.FormatBytes(mem.Free))),
	}

	for _, p := range snap.Storage.Partitions {
		label := fmt.Sprintf("Disk (%s)", p.Mountpoint)
		lines = append(lines, d.field(label, fmt.Sprintf("%s / %s (%.1f%%) %s",
			sysinfo.FormatBytes(p.Size.Used), sysinfo.FormatBytes(p.Size.Total), p.Size.Percent, p.Filesystem)))
	}
	lines = append(lines,
		d.field("Storage", fmt.Sprintf("%s in %d fixed partition%s",
			sysinfo.FormatBytes(snap.Storage.Total), len(snap.Storage.Partitions), plural(len(snap.Storage.Partitions)))),
		d.field("Runtime", fmt.Sprintf("Go %s (%d-bit, %s endian, api %d)",
			rt.Version, rt.BitWidth, rt.ByteOrder, rt.APIVersion)),
		d.field("Threads", fmt.Sprintf("%d goroutine%s, %d OS thread%s",
			rt.RuntimeThreads, plural(rt.RuntimeThreads), rt.OperatingSystemThreads, plural(rt.OperatingSystemThreads))),
		d.field("Process", fmt.Sprintf("%s resident, %d live objects, %s stack limit",
			sysinfo.FormatBytes(rt.UsedMemory), rt.TotalObjects, sysinfo.FormatBytes(uint64(max(rt.RecursionLimit, 0))))),
	)

	if d.color {
		lines = append(lines, "", colorBar())
	}
	return lines
}

func (d display) field(label, value string) string {
	return fmt.Sprintf("%s: %s", d.colorize(label, sysinfo.ColorBlue), value)
}

// colorize wraps text with an ANSI color code, or returns it unchanged
// when colors are disabled.
func (d display) colorize(text, color string) string {
	if !d.color {
		return text
	}
	return color + text + sysinfo.ColorReset
}

// getVisibleWidth calculates the display width of s excluding ANSI escape
// codes; wide runes count as two columns.
func getVisibleWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}

// colorBar shows the 16 basic background colors: 40-47 and 100-107.
func colorBar() string {
	var b strings.Builder
	for bg := 40; bg <= 47; bg++ {
		fmt.Fprintf(&b, "\033[%dm   ", bg)
	}
	for bg := 100; bg <= 107; bg++ {
		fmt.Fprintf(&b, "\033[%dm   ", bg)
	}
	b.WriteString(sysinfo.ColorReset)
	return b.String()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatBytes converts a byte count to a human-readable string using
// binary units.
//
// Example: FormatBytes(1536) returns "1.5 KiB"
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

// FormatSeconds renders a cumulative CPU time as days, hours and minutes.
// Fractions of a minute are dropped; values under a minute print as seconds.
//
// Example: FormatSeconds(93784) returns "1d 2h 3m"
func FormatSeconds(secs float64) string {
	if secs < 60 {
		return fmt.Sprintf("%.1fs", secs)
	}

	total := int64(secs) / 60
	days := total / (24 * 60)
	hours := (total / 60) % 24
	mins := total % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if days > 0 || hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	parts = append(parts, fmt.Sprintf("%dm", mins))
	return strings.Join(parts, " ")
}

// TruncateString shortens s to at most maxWidth terminal columns, adding an
// ellipsis if anything was cut. Wide runes count as two columns.
//
// Example: TruncateString("Hello World", 8) returns "Hello..."
func TruncateString(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

package sysinfo

import "strings"

// machineBits maps hardware architecture identifiers, as reported by
// uname, Windows or the Go toolchain, to a bit width.
var machineBits = map[string]int{
	"x86":    32,
	"i386":   32,
	"i486":   32,
	"i586":   32,
	"i686":   32,
	"386":    32,
	"arm":    32,
	"armv6l": 32,
	"armv7l": 32,
	"armv7":  32,
	"mips":   32,
	"mipsle": 32,
	"ppc":    32,

	"AMD64":    64,
	"amd64":    64,
	"x86_64":   64,
	"x64":      64,
	"ARM64":    64,
	"arm64":    64,
	"aarch64":  64,
	"ppc64":    64,
	"ppc64le":  64,
	"s390x":    64,
	"riscv64":  64,
	"mips64":   64,
	"mips64le": 64,
	"loong64":  64,
}

// BitWidth returns the bit width for an architecture identifier, or nil
// if the identifier is unknown.
func BitWidth(machine string) *int {
	if bits, ok := machineBits[machine]; ok {
		return &bits
	}
	if bits, ok := machineBits[strings.ToLower(machine)]; ok {
		return &bits
	}
	return nil
}

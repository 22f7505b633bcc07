// Package ascii provides ASCII art logos for the operating system families
// sysfetch reports. Logos are color-coded using ANSI escape sequences.
package ascii

import (
	"strings"

	"sysfetch/sysinfo"
)

// GetLogo returns the logo for an OS family name as reported in
// OSInfo.Name ("Linux", "Darwin", "Windows", ...). Unknown families get a
// generic terminal logo.
func GetLogo(osName string) []string {
	switch strings.ToLower(osName) {
	case "linux":
		return linuxLogo()
	case "darwin":
		return darwinLogo()
	case "windows":
		return windowsLogo()
	default:
		return genericLogo()
	}
}

// GetCompactLogo returns a smaller logo for constrained terminals.
func GetCompactLogo(osName string) []string {
	c := sysinfo.ColorCyan
	switch strings.ToLower(osName) {
	case "windows":
		r := sysinfo.ColorRed
		g := sysinfo.ColorGreen
		reset := sysinfo.ColorReset
		return []string{
			r + "########  ########" + reset,
			r + "########  ########" + reset,
			r + "########  ########" + reset,
			"",
			g + "########  ########" + reset,
			g + "########  ########" + reset,
			g + "########  ########" + reset,
		}
	case "linux":
		c = sysinfo.ColorYellow
	case "darwin":
		c = sysinfo.ColorGreen
	}
	r := sysinfo.ColorReset
	return []string{
		c + " .------. " + r,
		c + " | >_   | " + r,
		c + " |      | " + r,
		c + " '------' " + r,
	}
}

// linuxLogo is Tux, white body with a yellow beak and feet.
func linuxLogo() []string {
	w := sysinfo.ColorWhite
	y := sysinfo.ColorYellow
	r := sysinfo.ColorReset

	return []string{
		w + "        #####" + r,
		w + "       #######" + r,
		w + "       ##" + r + "O" + w + "#" + r + "O" + w + "##" + r,
		w + "       #" + y + "#####" + w + "#" + r,
		w + "     ##" + y + "##" + w + "###" + y + "##" + w + "##" + r,
		w + "    #" + y + "##########" + w + "##" + r,
		w + "   #" + y + "############" + w + "##" + r,
		w + "   #" + y + "############" + w + "###" + r,
		y + "  ##" + w + "#" + y + "###########" + w + "##" + y + "#" + r,
		y + "######" + w + "#" + y + "#######" + w + "#" + y + "######" + r,
		y + "#######" + w + "#" + y + "#####" + w + "#" + y + "#######" + r,
		y + "  #####" + w + "#######" + y + "#####" + r,
	}
}

func darwinLogo() []string {
	g := sysinfo.ColorGreen
	y := sysinfo.ColorYellow
	red := sysinfo.ColorRed
	p := sysinfo.ColorPurple
	b := sysinfo.ColorBlue
	r := sysinfo.ColorReset

	return []string{
		g + "                    c.'" + r,
		g + "                 ,xNMM." + r,
		g + "               .OMMMMo" + r,
		g + "               lMM\"" + r,
		g + "     .;loddo:.  .olloddol;." + r,
		g + "   cKMMMMMMMMMMNWMMMMMMMMMM0:" + r,
		y + " .KMMMMMMMMMMMMMMMMMMMMMMMWd." + r,
		y + " XMMMMMMMMMMMMMMMMMMMMMMMX." + r,
		red + ";MMMMMMMMMMMMMMMMMMMMMMMM:" + r,
		red + ":MMMMMMMMMMMMMMMMMMMMMMMM:" + r,
		red + ".MMMMMMMMMMMMMMMMMMMMMMMMX." + r,
		p + " kMMMMMMMMMMMMMMMMMMMMMMMMWd." + r,
		p + " 'XMMMMMMMMMMMMMMMMMMMMMMMMMMk" + r,
		b + "  'XMMMMMMMMMMMMMMMMMMMMMMMMK." + r,
		b + "    kMMMMMMMMMMMMMMMMMMMMMMd" + r,
		b + "     ;KMMMMMMMWXXWMMMMMMMk." + r,
		b + "       \"cooc*\"    \"*coo'\"" + r,
	}
}

// windowsLogo is the four-pane Windows 10/11 window.
func windowsLogo() []string {
	c := sysinfo.ColorCyan
	r := sysinfo.ColorReset

	pane := "llllllllllllll  lllllllllllllllllll"
	lines := []string{
		c + "                               ..,," + r,
		c + "                    ....,,:;+ccllll" + r,
		c + "      ...,,+:;  cllllllllllllllllll" + r,
		c + ",cclllllllllll  lllllllllllllllllll" + r,
	}
	for i := 0; i < 5; i++ {
		lines = append(lines, c+pane+r)
	}
	lines = append(lines, "")
	for i := 0; i < 6; i++ {
		lines = append(lines, c+pane+r)
	}
	return append(lines, c+"`'ccllllllllll  lllllllllllllllllll"+r)
}

func genericLogo() []string {
	c := sysinfo.ColorCyan
	r := sysinfo.ColorReset

	return []string{
		c + " .----------------." + r,
		c + " |                |" + r,
		c + " |  >_            |" + r,
		c + " |                |" + r,
		c + " |                |" + r,
		c + " '----------------'" + r,
		c + "     _|______|_" + r,
	}
}
